package main

import (
	"fmt"

	"github.com/fwojciec/fbmarket"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, c.Query, c.Question)
	if err != nil {
		if fbmarket.ErrorCode(err) == fbmarket.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no saved listings for %q. Run 'fbmarket search %q --save' first.\n", c.Query, c.Query)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fbmarket.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
