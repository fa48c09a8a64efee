package main

import (
	"fmt"

	"github.com/fwojciec/fbmarket"
	"github.com/fwojciec/fbmarket/extract"
	"github.com/fwojciec/fbmarket/goquery"
)

// Run executes the item command.
func (c *ItemCmd) Run(deps *Dependencies) error {
	ids := make([]string, len(c.IDs))
	for i, raw := range c.IDs {
		id, err := resolveListingID(raw)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fbmarket.ErrorMessage(err))
			return err
		}
		ids[i] = id
	}

	var details []*fbmarket.ListingDetail
	var err error
	if c.FromFile != "" {
		details, err = c.detailsFromFile(deps, ids)
	} else {
		details, err = deps.Scraper.AllListingDetails(deps.Ctx, ids)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fbmarket.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, details)
	}
	printDetails(deps.Stdout, details)
	return nil
}

// detailsFromFile extracts a detail record from a saved HTML item page.
// A saved page holds one listing, so exactly one ID must be given.
func (c *ItemCmd) detailsFromFile(deps *Dependencies, ids []string) ([]*fbmarket.ListingDetail, error) {
	if len(ids) != 1 {
		return nil, fbmarket.Errorf(fbmarket.EINVALID, "--from-file takes exactly one listing ID")
	}
	page, err := goquery.NewPageFromFile(c.FromFile)
	if err != nil {
		return nil, err
	}
	detail, err := deps.Scraper.DetailFromPage(deps.Ctx, ids[0], page)
	if err != nil {
		return nil, err
	}
	return []*fbmarket.ListingDetail{detail}, nil
}

// resolveListingID accepts either a bare listing ID or a marketplace
// item URL and returns the listing ID.
func resolveListingID(raw string) (string, error) {
	if id, ok := extract.ListingID(raw); ok {
		return id, nil
	}
	if raw == "" {
		return "", fbmarket.Errorf(fbmarket.EINVALID, "listing ID required")
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return "", fbmarket.Errorf(fbmarket.EINVALID, "not a listing ID or item URL: %q", raw)
		}
	}
	return raw, nil
}
