package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/fbmarket"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for page-open retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// OpenWithRetry attempts to open a URL with exponential backoff retry logic.
// It retries up to 3 times (4 total attempts) with delays of 1s, 2s, 4s.
// The logger function, if provided, is called for each retry attempt.
func OpenWithRetry(ctx context.Context, browser fbmarket.Browser, url string, logger LogFunc) (fbmarket.Page, error) {
	return OpenWithRetryDelays(ctx, browser, url, logger, DefaultRetryDelays())
}

// OpenWithRetryDelays is like OpenWithRetry but allows configurable delays.
// This is useful for testing without waiting for real delays.
func OpenWithRetryDelays(ctx context.Context, browser fbmarket.Browser, url string, logger LogFunc, delays []time.Duration) (fbmarket.Page, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		page, err := browser.Open(ctx, url)
		if err == nil {
			return page, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		// Check context before sleeping
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Log retry
		if logger != nil {
			logger("  retry %s (attempt %d): %v", TruncateURL(url, 80), attempt+2, err)
		}

		// Wait before next attempt
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
