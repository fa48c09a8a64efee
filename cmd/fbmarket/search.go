package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/fbmarket"
	"github.com/fwojciec/fbmarket/goquery"
	"github.com/fwojciec/fbmarket/scrape"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.FromFile != "" && c.Details {
		fmt.Fprintf(deps.Stderr, "error: --details needs the live site and cannot be combined with --from-file\n")
		return fbmarket.Errorf(fbmarket.EINVALID, "--details cannot be combined with --from-file")
	}

	search := fbmarket.Search{
		Query:      c.Query,
		LocationID: c.Location,
		Locale:     c.Locale,
		DaysListed: c.Days,
	}

	var summaries []*fbmarket.ListingSummary
	var err error
	if c.FromFile != "" {
		summaries, err = c.searchFromFile(deps, search)
	} else {
		summaries, err = deps.Marketplace.SearchListings(deps.Ctx, search)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fbmarket.ErrorMessage(err))
		return err
	}

	if c.Save {
		if err := c.saveSummaries(deps, summaries); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", fbmarket.ErrorMessage(err))
			return err
		}
	}

	if c.Details {
		ids := make([]string, len(summaries))
		for i, s := range summaries {
			ids[i] = s.ListingID
		}
		details, err := deps.Scraper.AllListingDetails(deps.Ctx, ids)
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

	if c.JSON {
		return printJSON(deps.Stdout, summaries)
	}
	printSummaries(deps.Stdout, c.Query, summaries)
	return nil
}

// searchFromFile extracts summaries from a saved HTML page. The search
// itself is not validated against the live site; the query only names
// the result set.
func (c *SearchCmd) searchFromFile(deps *Dependencies, search fbmarket.Search) ([]*fbmarket.ListingSummary, error) {
	if err := search.Validate(); err != nil {
		return nil, err
	}
	page, err := goquery.NewPageFromFile(c.FromFile)
	if err != nil {
		return nil, err
	}
	return deps.Scraper.SummariesFromPage(deps.Ctx, page)
}

// saveSummaries persists the summaries and reports how many were new.
func (c *SearchCmd) saveSummaries(deps *Dependencies, summaries []*fbmarket.ListingSummary) error {
	var newCount int
	for _, summary := range summaries {
		listing := &fbmarket.StoredListing{
			ListingID:   summary.ListingID,
			Query:       c.Query,
			Title:       summary.Title,
			Price:       summary.Price,
			Location:    summary.Location,
			URL:         summary.URL,
			ImageURL:    summary.ImageURL,
			ContentHash: scrape.ContentHash(summary),
		}
		if err := deps.Listings.SaveListing(deps.Ctx, listing); err != nil {
			return err
		}
		if listing.New() {
			newCount++
		}
	}
	fmt.Fprintf(deps.Stdout, "Saved %d listings (%d new)\n", len(summaries), newCount)
	return nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// printSummaries writes a readable summary listing.
func printSummaries(w io.Writer, query string, summaries []*fbmarket.ListingSummary) {
	if len(summaries) == 0 {
		fmt.Fprintf(w, "No listings found for %q\n", query)
		return
	}

	fmt.Fprintf(w, "Found %d listings for %q:\n\n", len(summaries), query)
	for i, s := range summaries {
		fmt.Fprintf(w, "  %d. %s\n     %s", i+1, s.Title, s.Price)
		if s.Location != "" {
			fmt.Fprintf(w, "  %s", s.Location)
		}
		fmt.Fprintf(w, "\n     %s\n", s.URL)
	}
}

// printDetails writes readable detail records.
func printDetails(w io.Writer, details []*fbmarket.ListingDetail) {
	for i, d := range details {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", d.Title)
		fmt.Fprintf(w, "  Price:     %s\n", d.Price)
		if d.Location != "" {
			fmt.Fprintf(w, "  Location:  %s\n", d.Location)
		}
		if d.Condition != nil {
			fmt.Fprintf(w, "  Condition: %s\n", *d.Condition)
		}
		if d.ListedDate != nil {
			fmt.Fprintf(w, "  Listed:    %s\n", *d.ListedDate)
		}
		fmt.Fprintf(w, "  URL:       %s\n", d.URL)
		if d.Description != "" {
			fmt.Fprintf(w, "  %s\n", d.Description)
		}
	}
}
