package fbmarket

import (
	"context"
	"fmt"
	"net/url"
)

// Default search parameters. The location ID is a Facebook place
// identifier; the default points at a UK location.
const (
	DefaultLocationID = "108339199186201"
	DefaultLocale     = "en_GB"
)

// Search describes one marketplace search: what to look for and where.
type Search struct {
	Query      string
	LocationID string
	Locale     string

	// DaysListed restricts results to listings from the last N days.
	// Zero means no restriction.
	DaysListed int
}

// Validate returns an error if the search contains invalid fields.
func (s Search) Validate() error {
	if s.Query == "" {
		return Errorf(EINVALID, "search query required")
	}
	return nil
}

// URL returns the marketplace search results URL for the search.
// Unset location and locale fall back to the package defaults.
func (s Search) URL() string {
	locationID := s.LocationID
	if locationID == "" {
		locationID = DefaultLocationID
	}
	locale := s.Locale
	if locale == "" {
		locale = DefaultLocale
	}

	u := fmt.Sprintf("https://www.facebook.com/marketplace/%s/search?query=%s&locale=%s",
		locationID, url.QueryEscape(s.Query), locale)
	if s.DaysListed > 0 {
		u += fmt.Sprintf("&daysSinceListed=%d", s.DaysListed)
	}
	return u
}

// MarketplaceService searches the marketplace and retrieves listing
// details. Implementations hide page navigation and extraction behind
// the two record-producing operations.
type MarketplaceService interface {
	// SearchListings runs a search and returns the extracted summaries,
	// deduplicated by listing ID in first-seen order.
	// Returns ETIMEOUT if no listing anchors appear within the wait budget.
	SearchListings(ctx context.Context, search Search) ([]*ListingSummary, error)

	// ListingDetails retrieves the detail record for one listing.
	ListingDetails(ctx context.Context, listingID string) (*ListingDetail, error)
}

// Limiter paces outgoing page loads.
type Limiter interface {
	// Wait blocks until the limiter allows another request.
	// Returns an error if the context is canceled before then.
	Wait(ctx context.Context) error
}
