package main

import (
	"fmt"

	"github.com/fwojciec/fbmarket"
)

// Run executes the listings command.
func (c *ListingsCmd) Run(deps *Dependencies) error {
	filter := fbmarket.ListingFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.Query != "" {
		filter.Query = &c.Query
	}

	listings, err := deps.Listings.FindListings(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fbmarket.ErrorMessage(err))
		return err
	}

	if c.New {
		kept := listings[:0]
		for _, l := range listings {
			if l.New() {
				kept = append(kept, l)
			}
		}
		listings = kept
	}

	if c.JSON {
		return printJSON(deps.Stdout, listings)
	}

	if len(listings) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved listings. Use 'fbmarket search <query> --save' to save some.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%d saved listings:\n\n", len(listings))
	for i, l := range listings {
		marker := " "
		if l.New() {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %d. %s\n     %s", marker, i+1, l.Title, l.Price)
		if l.Location != "" {
			fmt.Fprintf(deps.Stdout, "  %s", l.Location)
		}
		fmt.Fprintf(deps.Stdout, "\n     query %q, last seen %s\n     %s\n",
			l.Query, l.LastSeenAt.Format("2006-01-02"), l.URL)
	}

	return nil
}
