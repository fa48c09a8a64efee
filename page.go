package fbmarket

import (
	"context"
	"time"
)

// Anchor describes one clickable listing element found on a search results
// page: its href, its rendered inner text, and the source URL of the first
// image beneath it, if any.
type Anchor struct {
	Href     string
	Text     string
	ImageURL *string
}

// Browser opens rendered pages. Implementations own the browser session
// and everything that goes with it: navigation, network waits, cookie
// consent dismissal, and settle delays. The extraction core never touches
// a Browser directly.
type Browser interface {
	// Open navigates to the URL and returns the rendered page.
	// The returned page must be closed by the caller.
	Open(ctx context.Context, url string) (Page, error)

	// Close releases browser resources.
	// Must be called when the Browser is no longer needed.
	Close() error
}

// Page is a narrow read-only view of one rendered page. It is the only
// capability the scraping layer consumes, which keeps extraction testable
// with synthetic pages and no real browser.
type Page interface {
	// WaitForElements blocks until at least one element matching the
	// selector exists. Returns ETIMEOUT if none appear within the timeout.
	WaitForElements(ctx context.Context, selector string, timeout time.Duration) error

	// FindElements returns all elements matching the selector, in document
	// order. An empty result is valid.
	FindElements(selector string) ([]Element, error)

	// VisibleText returns the rendered visible text of the page body.
	// The text may contain embedded newlines.
	VisibleText() (string, error)

	// Close releases page resources.
	Close() error
}

// Element is a handle to one element on a rendered page.
type Element interface {
	// Attribute returns the value of the named attribute, or nil if the
	// attribute is absent.
	Attribute(name string) (*string, error)

	// VisibleText returns the rendered visible text of the element.
	VisibleText() (string, error)

	// FindElement returns the first descendant matching the selector.
	// Returns ENOTFOUND if no descendant matches.
	FindElement(selector string) (Element, error)
}
