// Package extract turns rendered marketplace page text into structured
// listing records. The input is never markup: search pages yield anchor
// descriptors (href plus rendered inner text) and item pages yield the
// body's visible text. With no stable machine-readable structure to lean
// on, extraction is positional: lines are classified by heuristic
// predicates and assigned to roles greedily, first plausible match wins.
//
// Everything in this package is pure and synchronous. Page retrieval,
// waiting, and error propagation happen upstream in scrape.
package extract

import (
	"regexp"
	"strings"
)

// listingIDPattern matches the digit run identifying a listing in an
// item URL path.
var listingIDPattern = regexp.MustCompile(`/marketplace/item/(\d+)`)

// ListingID extracts the listing identifier from an href. The second
// return value reports whether the href contained an item path segment.
func ListingID(href string) (string, bool) {
	m := listingIDPattern.FindStringSubmatch(href)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Lines splits raw rendered text into trimmed, non-empty lines.
// Order and duplicates are preserved; deduplication happens at the
// record level, never at the line level.
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
