// Package slog provides logging decorators for fbmarket services using
// the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fbmarket"
)

// Ensure LoggingMarketplaceService implements fbmarket.MarketplaceService.
var _ fbmarket.MarketplaceService = (*LoggingMarketplaceService)(nil)

// LoggingMarketplaceService wraps a MarketplaceService with structured logging.
type LoggingMarketplaceService struct {
	next   fbmarket.MarketplaceService
	logger *slog.Logger
}

// NewLoggingMarketplaceService creates a new LoggingMarketplaceService.
func NewLoggingMarketplaceService(next fbmarket.MarketplaceService, logger *slog.Logger) *LoggingMarketplaceService {
	return &LoggingMarketplaceService{next: next, logger: logger}
}

// SearchListings delegates to the wrapped service and logs the outcome.
func (s *LoggingMarketplaceService) SearchListings(ctx context.Context, search fbmarket.Search) ([]*fbmarket.ListingSummary, error) {
	begin := time.Now()
	summaries, err := s.next.SearchListings(ctx, search)
	if err != nil {
		s.logger.Error("search listings",
			"query", search.Query,
			"err", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("search listings",
		"query", search.Query,
		"listings", len(summaries),
		"duration", time.Since(begin),
	)
	return summaries, nil
}

// ListingDetails delegates to the wrapped service and logs the outcome.
func (s *LoggingMarketplaceService) ListingDetails(ctx context.Context, listingID string) (*fbmarket.ListingDetail, error) {
	begin := time.Now()
	detail, err := s.next.ListingDetails(ctx, listingID)
	if err != nil {
		s.logger.Error("listing details",
			"listing_id", listingID,
			"err", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("listing details",
		"listing_id", listingID,
		"title", detail.Title,
		"duration", time.Since(begin),
	)
	return detail, nil
}
