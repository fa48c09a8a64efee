package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/fbmarket"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ fbmarket.ListingService = (*ListingService)(nil)

// ListingService implements fbmarket.ListingService using SQLite.
type ListingService struct {
	db *DB

	// Now returns the current time. Overridable in tests.
	Now func() time.Time
}

// NewListingService creates a new ListingService.
func NewListingService(db *DB) *ListingService {
	return &ListingService{db: db, Now: time.Now}
}

// SaveListing inserts or updates a listing keyed by (query, listing ID).
// On first sight both seen timestamps are set to now; on subsequent saves
// the summary fields and last_seen_at are refreshed while first_seen_at
// is preserved. The passed listing is updated in place so the caller can
// inspect New() afterwards.
func (s *ListingService) SaveListing(ctx context.Context, listing *fbmarket.StoredListing) error {
	if err := listing.Validate(); err != nil {
		return err
	}

	now := s.Now().UTC().Truncate(time.Second)

	var existingID, firstSeenAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, first_seen_at FROM listings WHERE query = ? AND listing_id = ?
	`, listing.Query, listing.ListingID).Scan(&existingID, &firstSeenAt)

	switch {
	case err == sql.ErrNoRows:
		listing.ID = uuid.New().String()
		listing.FirstSeenAt = now
		listing.LastSeenAt = now

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO listings (id, listing_id, query, title, price, location, url, image_url, content_hash, first_seen_at, last_seen_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, listing.ID, listing.ListingID, listing.Query, listing.Title, listing.Price,
			listing.Location, listing.URL, nullableString(listing.ImageURL), listing.ContentHash,
			now.Format(time.RFC3339), now.Format(time.RFC3339))
		return err

	case err != nil:
		return err
	}

	listing.ID = existingID
	listing.FirstSeenAt, err = parseRFC3339(firstSeenAt, "first_seen_at")
	if err != nil {
		return err
	}
	listing.LastSeenAt = now

	_, err = s.db.ExecContext(ctx, `
		UPDATE listings
		SET title = ?, price = ?, location = ?, url = ?, image_url = ?, content_hash = ?, last_seen_at = ?
		WHERE id = ?
	`, listing.Title, listing.Price, listing.Location, listing.URL,
		nullableString(listing.ImageURL), listing.ContentHash, now.Format(time.RFC3339), existingID)

	return err
}

// FindListings retrieves listings matching the filter, most recently seen first.
func (s *ListingService) FindListings(ctx context.Context, filter fbmarket.ListingFilter) ([]*fbmarket.StoredListing, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, listing_id, query, title, price, location, url, image_url, content_hash, first_seen_at, last_seen_at FROM listings WHERE 1=1")

	if filter.ListingID != nil {
		query.WriteString(" AND listing_id = ?")
		args = append(args, *filter.ListingID)
	}
	if filter.Query != nil {
		query.WriteString(" AND query = ?")
		args = append(args, *filter.Query)
	}

	query.WriteString(" ORDER BY last_seen_at DESC, listing_id ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*fbmarket.StoredListing
	for rows.Next() {
		var listing fbmarket.StoredListing
		var imageURL sql.NullString
		var firstSeenAt, lastSeenAt string

		if err := rows.Scan(&listing.ID, &listing.ListingID, &listing.Query, &listing.Title,
			&listing.Price, &listing.Location, &listing.URL, &imageURL, &listing.ContentHash,
			&firstSeenAt, &lastSeenAt); err != nil {
			return nil, err
		}

		if imageURL.Valid {
			listing.ImageURL = &imageURL.String
		}
		if listing.FirstSeenAt, err = parseRFC3339(firstSeenAt, "first_seen_at"); err != nil {
			return nil, err
		}
		if listing.LastSeenAt, err = parseRFC3339(lastSeenAt, "last_seen_at"); err != nil {
			return nil, err
		}

		listings = append(listings, &listing)
	}

	return listings, rows.Err()
}

// DeleteListingsByQuery removes all listings saved for a query.
func (s *ListingService) DeleteListingsByQuery(ctx context.Context, query string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM listings WHERE query = ?", query)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return fbmarket.Errorf(fbmarket.ENOTFOUND, "no listings found for query %q", query)
	}

	return nil
}

// nullableString converts an optional string to a driver-friendly value.
func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
