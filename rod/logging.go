package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fbmarket"
)

// Ensure LoggingBrowser implements fbmarket.Browser.
var _ fbmarket.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with debug logging.
type LoggingBrowser struct {
	next   fbmarket.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next fbmarket.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// Open logs the URL being opened and delegates to the wrapped browser.
func (b *LoggingBrowser) Open(ctx context.Context, url string) (page fbmarket.Page, err error) {
	defer func(begin time.Time) {
		b.logger.Info("open",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Open(ctx, url)
}

// Close delegates to the wrapped browser.
func (b *LoggingBrowser) Close() error {
	return b.next.Close()
}
