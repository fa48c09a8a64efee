package fbmarket

import (
	"context"
	"time"
)

// ItemURLPrefix is the canonical URL prefix for marketplace item pages.
const ItemURLPrefix = "https://www.facebook.com/marketplace/item/"

// ItemURL returns the canonical URL for a listing. The URL is a pure
// function of the listing identifier.
func ItemURL(listingID string) string {
	return ItemURLPrefix + listingID
}

// ListingSummary is one listing as it appears in search results.
// Summaries are ephemeral: they are produced by a single extraction pass
// and are not retained between passes.
type ListingSummary struct {
	ListingID string  `json:"listing_id"`
	Title     string  `json:"title"`
	Price     string  `json:"price"`
	Location  string  `json:"location"`
	URL       string  `json:"url"`
	ImageURL  *string `json:"image_url"`
}

// ListingDetail holds the full details extracted from a single item page.
// Optional fields are nil when no heuristic matched; a partially filled
// detail is a valid result, not an error.
type ListingDetail struct {
	ListingID   string  `json:"listing_id"`
	Title       string  `json:"title"`
	Price       string  `json:"price"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Condition   *string `json:"condition"`
	ListedDate  *string `json:"listed_date"`
	URL         string  `json:"url"`
}

// StoredListing is a listing summary persisted across search runs so that
// repeated searches can report new and changed listings.
type StoredListing struct {
	ID          string    `json:"id"`
	ListingID   string    `json:"listingId"`
	Query       string    `json:"query"`
	Title       string    `json:"title"`
	Price       string    `json:"price"`
	Location    string    `json:"location"`
	URL         string    `json:"url"`
	ImageURL    *string   `json:"imageUrl"`
	ContentHash string    `json:"contentHash"`
	FirstSeenAt time.Time `json:"firstSeenAt"`
	LastSeenAt  time.Time `json:"lastSeenAt"`
}

// New reports whether the listing was first seen on the most recent save.
func (l *StoredListing) New() bool {
	return l.FirstSeenAt.Equal(l.LastSeenAt)
}

// Validate returns an error if the stored listing contains invalid fields.
func (l *StoredListing) Validate() error {
	if l.ListingID == "" {
		return Errorf(EINVALID, "listing ID required")
	}
	if l.Query == "" {
		return Errorf(EINVALID, "listing query required")
	}
	return nil
}

// ListingService represents a service for persisting listings across runs.
type ListingService interface {
	// SaveListing inserts or updates a listing keyed by (query, listing ID).
	// On insert both seen timestamps are set; on update only the last-seen
	// timestamp and the summary fields change, so FirstSeenAt survives.
	SaveListing(ctx context.Context, listing *StoredListing) error

	// FindListings retrieves listings matching the filter, most recently
	// seen first.
	FindListings(ctx context.Context, filter ListingFilter) ([]*StoredListing, error)

	// DeleteListingsByQuery removes all listings saved for a query.
	// Returns ENOTFOUND if no listings exist for the query.
	DeleteListingsByQuery(ctx context.Context, query string) error
}

// ListingFilter represents a filter for FindListings.
type ListingFilter struct {
	ListingID *string `json:"listingId"`
	Query     *string `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
