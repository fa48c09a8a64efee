package mock

import (
	"context"

	"github.com/fwojciec/fbmarket"
)

var _ fbmarket.MarketplaceService = (*MarketplaceService)(nil)

// MarketplaceService is a mock implementation of fbmarket.MarketplaceService.
type MarketplaceService struct {
	SearchListingsFn func(ctx context.Context, search fbmarket.Search) ([]*fbmarket.ListingSummary, error)
	ListingDetailsFn func(ctx context.Context, listingID string) (*fbmarket.ListingDetail, error)
}

func (s *MarketplaceService) SearchListings(ctx context.Context, search fbmarket.Search) ([]*fbmarket.ListingSummary, error) {
	return s.SearchListingsFn(ctx, search)
}

func (s *MarketplaceService) ListingDetails(ctx context.Context, listingID string) (*fbmarket.ListingDetail, error) {
	return s.ListingDetailsFn(ctx, listingID)
}
