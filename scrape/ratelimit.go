package scrape

import (
	"context"

	"github.com/fwojciec/fbmarket"
	"golang.org/x/time/rate"
)

var _ fbmarket.Limiter = (*RateLimiter)(nil)

// RateLimiter paces page loads using a token bucket. Every search and
// detail fetch waits on it, so repeated runs stay gentle on the remote
// site regardless of how many pages a command touches.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a new RateLimiter with the specified requests per
// second limit and a burst of 1 (no bursting allowed).
func NewRateLimiter(rps float64) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Wait blocks until the rate limit allows another request.
// Returns an error if the context is canceled before the wait completes.
func (l *RateLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
