package mock

import (
	"context"

	"github.com/fwojciec/fbmarket"
)

var _ fbmarket.ListingService = (*ListingService)(nil)

// ListingService is a mock implementation of fbmarket.ListingService.
type ListingService struct {
	SaveListingFn           func(ctx context.Context, listing *fbmarket.StoredListing) error
	FindListingsFn          func(ctx context.Context, filter fbmarket.ListingFilter) ([]*fbmarket.StoredListing, error)
	DeleteListingsByQueryFn func(ctx context.Context, query string) error
}

func (s *ListingService) SaveListing(ctx context.Context, listing *fbmarket.StoredListing) error {
	return s.SaveListingFn(ctx, listing)
}

func (s *ListingService) FindListings(ctx context.Context, filter fbmarket.ListingFilter) ([]*fbmarket.StoredListing, error) {
	return s.FindListingsFn(ctx, filter)
}

func (s *ListingService) DeleteListingsByQuery(ctx context.Context, query string) error {
	return s.DeleteListingsByQueryFn(ctx, query)
}
