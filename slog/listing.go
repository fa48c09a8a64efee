package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/fbmarket"
)

// Ensure LoggingListingService implements fbmarket.ListingService.
var _ fbmarket.ListingService = (*LoggingListingService)(nil)

// LoggingListingService wraps a ListingService with structured logging.
type LoggingListingService struct {
	next   fbmarket.ListingService
	logger *slog.Logger
}

// NewLoggingListingService creates a new LoggingListingService.
func NewLoggingListingService(next fbmarket.ListingService, logger *slog.Logger) *LoggingListingService {
	return &LoggingListingService{next: next, logger: logger}
}

// SaveListing delegates to the wrapped service and logs whether the
// listing was new or refreshed.
func (s *LoggingListingService) SaveListing(ctx context.Context, listing *fbmarket.StoredListing) error {
	if err := s.next.SaveListing(ctx, listing); err != nil {
		s.logger.Error("save listing",
			"listing_id", listing.ListingID,
			"query", listing.Query,
			"err", err,
		)
		return err
	}
	s.logger.Debug("save listing",
		"listing_id", listing.ListingID,
		"query", listing.Query,
		"new", listing.New(),
	)
	return nil
}

// FindListings delegates to the wrapped service.
func (s *LoggingListingService) FindListings(ctx context.Context, filter fbmarket.ListingFilter) ([]*fbmarket.StoredListing, error) {
	listings, err := s.next.FindListings(ctx, filter)
	if err != nil {
		s.logger.Error("find listings", "err", err)
		return nil, err
	}
	s.logger.Debug("find listings", "count", len(listings))
	return listings, nil
}

// DeleteListingsByQuery delegates to the wrapped service and logs the outcome.
func (s *LoggingListingService) DeleteListingsByQuery(ctx context.Context, query string) error {
	if err := s.next.DeleteListingsByQuery(ctx, query); err != nil {
		s.logger.Error("delete listings", "query", query, "err", err)
		return err
	}
	s.logger.Info("delete listings", "query", query)
	return nil
}
