package scrape

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/fbmarket"
)

// ContentHash computes a hash over a summary's displayed fields using
// xxhash. The listing store compares hashes across runs to tell changed
// listings (price drops, edited titles) from merely re-seen ones.
func ContentHash(summary *fbmarket.ListingSummary) string {
	h := xxhash.New()
	_, _ = h.WriteString(summary.Title)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(summary.Price)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(summary.Location)
	return fmt.Sprintf("%x", h.Sum64())
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return dots
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
