// Package rod provides a Chrome-backed implementation of the fbmarket
// page interfaces using go-rod browser automation. It owns everything the
// extraction core must never see: navigation, cookie consent, settle
// delays, and browser lifecycle.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/fbmarket"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// DefaultSettleDelay is how long Open waits after load before handing the
// page over: marketplace pages keep filling in after the load event, and
// the pause doubles as a respectful delay between requests.
const DefaultSettleDelay = 5 * time.Second

// userAgent presented to the site. A desktop UA gets the desktop layout
// that the extraction heuristics are tuned for.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Browser implements fbmarket.Browser at compile time.
var _ fbmarket.Browser = (*Browser)(nil)

// Browser opens rendered marketplace pages in headless Chrome. The
// underlying browser is recycled after maxPages pages have been opened:
// Chrome accumulates memory over time and the baseline never returns to
// initial levels even with proper page cleanup.
//
// Browser is safe for concurrent use.
type Browser struct {
	browser     *rod.Browser
	launcher    *launcher.Launcher
	pageCount   int64
	maxPages    int64
	headless    bool
	settleDelay time.Duration
	mu          sync.Mutex
	closed      atomic.Bool
}

// Option configures a Browser.
type Option func(*Browser)

// WithMaxPages sets the maximum number of pages before the browser is recycled.
// Defaults to 75 if not specified.
func WithMaxPages(n int64) Option {
	return func(b *Browser) {
		b.maxPages = n
	}
}

// WithHeadless controls whether Chrome runs headless. Defaults to true;
// disable to watch the browser while debugging selectors.
func WithHeadless(headless bool) Option {
	return func(b *Browser) {
		b.headless = headless
	}
}

// WithSettleDelay sets the post-load delay before a page is handed over.
// Defaults to DefaultSettleDelay.
func WithSettleDelay(d time.Duration) Option {
	return func(b *Browser) {
		b.settleDelay = d
	}
}

// NewBrowser creates a new Browser and launches Chrome.
// Close must be called when the Browser is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...Option) (*Browser, error) {
	b := &Browser{
		maxPages:    DefaultMaxPages,
		headless:    true,
		settleDelay: DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.launchBrowser(); err != nil {
		return nil, err
	}

	return b, nil
}

// Open navigates to the URL, dismisses the cookie consent dialog if one
// appears, waits for the page to settle, and returns the rendered page.
func (b *Browser) Open(ctx context.Context, url string) (fbmarket.Page, error) {
	if b.closed.Load() {
		return nil, fbmarket.Errorf(fbmarket.EINTERNAL, "browser is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := b.acquire().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	page = page.Context(ctx)

	if err := b.preparePage(page); err != nil {
		_ = page.Close()
		return nil, err
	}

	if err := page.Navigate(url); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("waiting for load: %w", err)
	}

	dismissConsent(page)

	if b.settleDelay > 0 {
		select {
		case <-ctx.Done():
			_ = page.Close()
			return nil, ctx.Err()
		case <-time.After(b.settleDelay):
		}
	}

	atomic.AddInt64(&b.pageCount, 1)

	return &Page{page: page}, nil
}

// preparePage applies the viewport and user agent before navigation.
func (b *Browser) preparePage(page *rod.Page) error {
	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: userAgent}); err != nil {
		return fmt.Errorf("setting user agent: %w", err)
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             1920,
		Height:            1080,
		DeviceScaleFactor: 1,
	}); err != nil {
		return fmt.Errorf("setting viewport: %w", err)
	}
	return nil
}

// consentTimeout bounds how long we look for each consent button.
const consentTimeout = 2 * time.Second

// dismissConsent clicks through the cookie consent dialog variants.
// Consent is best effort: a missing dialog is the common case and every
// error here is ignored.
func dismissConsent(page *rod.Page) {
	if el, err := page.Timeout(consentTimeout).Element(`button[data-cookiebanner="accept_button"]`); err == nil {
		if err := el.Click(proto.InputMouseButtonLeft, 1); err == nil {
			time.Sleep(time.Second)
		}
	}
	if el, err := page.Timeout(consentTimeout).ElementR("button", "Allow all cookies"); err == nil {
		if err := el.Click(proto.InputMouseButtonLeft, 1); err == nil {
			time.Sleep(time.Second)
		}
	}
}

// acquire returns the current browser instance, recycling if the page
// count has reached maxPages.
func (b *Browser) acquire() *rod.Browser {
	b.mu.Lock()
	defer b.mu.Unlock()

	if atomic.LoadInt64(&b.pageCount) >= b.maxPages {
		b.recycleBrowser()
	}

	return b.browser
}

// Close releases browser resources. Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.closeBrowser()
}

// launchBrowser starts a new browser instance with stability flags.
func (b *Browser) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(b.headless)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.browser = browser
	b.launcher = lnchr
	return nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (b *Browser) closeBrowser() error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one.
// If launching the new browser fails, the old browser is kept.
// Must be called with mu held.
func (b *Browser) recycleBrowser() {
	// Save old instances in case new launch fails
	oldBrowser := b.browser
	oldLauncher := b.launcher
	b.browser = nil
	b.launcher = nil

	// Try to launch new browser
	if err := b.launchBrowser(); err != nil {
		// Restore old instances if new launch fails
		b.browser = oldBrowser
		b.launcher = oldLauncher
		return
	}

	// Successfully launched new browser, clean up old one
	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&b.pageCount, 0)
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (b *Browser) LauncherPID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}
