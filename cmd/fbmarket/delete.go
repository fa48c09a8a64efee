package main

import (
	"fmt"

	"github.com/fwojciec/fbmarket"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return fbmarket.Errorf(fbmarket.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Listings.DeleteListingsByQuery(deps.Ctx, c.Query); err != nil {
		if fbmarket.ErrorCode(err) == fbmarket.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no saved listings for %q. Use 'fbmarket listings' to see what is saved.\n", c.Query)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fbmarket.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted saved listings for %q\n", c.Query)
	return nil
}
