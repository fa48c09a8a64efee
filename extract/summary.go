package extract

import (
	"github.com/fwojciec/fbmarket"
)

// Summaries converts anchor descriptors from one search results page into
// listing summaries. Anchors are processed in the given order; the first
// anchor seen for a listing ID wins and later duplicates are ignored, so
// output order equals first-seen order. Anchors without a resolvable ID
// or without any classifiable text are dropped silently: one bad anchor
// never fails the pass.
func Summaries(anchors []fbmarket.Anchor) []*fbmarket.ListingSummary {
	var summaries []*fbmarket.ListingSummary
	seen := make(map[string]struct{})

	for _, anchor := range anchors {
		id, ok := ListingID(anchor.Href)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		title, price, location := classifyAnchorText(anchor.Text)
		if title == "" && price == "" {
			// Neither role classified: noise, not a listing.
			continue
		}
		if title == "" {
			title = "Listing " + id
		}
		if price == "" {
			price = "Price not listed"
		}

		summaries = append(summaries, &fbmarket.ListingSummary{
			ListingID: id,
			Title:     title,
			Price:     price,
			Location:  location,
			URL:       fbmarket.ItemURL(id),
			ImageURL:  anchor.ImageURL,
		})
	}

	return summaries
}

// classifyAnchorText assigns the lines of an anchor's rendered text to the
// title, price, and location roles. Assignment is greedy and exclusive:
// each line fills at most one role, a filled role is never revisited, and
// price-shaped lines are always consumed by the price branch so they can
// never become a title or location.
func classifyAnchorText(text string) (title, price, location string) {
	for _, line := range Lines(text) {
		switch {
		case IsPrice(line):
			if price == "" {
				price = line
			}
		case title == "" && LooksLikeTitle(line):
			title = line
		case title != "" && location == "" && LooksLikeLocation(line):
			location = line
		}
	}
	return title, price, location
}
