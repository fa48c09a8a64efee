package rod

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/fbmarket"
	"github.com/go-rod/rod"
)

// Compile-time interface verification.
var (
	_ fbmarket.Page    = (*Page)(nil)
	_ fbmarket.Element = (*Element)(nil)
)

// Page wraps a rod page behind the narrow fbmarket.Page interface.
type Page struct {
	page *rod.Page
}

// WaitForElements blocks until at least one element matching the selector
// exists. Returns ETIMEOUT if none appear within the timeout.
func (p *Page) WaitForElements(ctx context.Context, selector string, timeout time.Duration) error {
	_, err := p.page.Context(ctx).Timeout(timeout).Element(selector)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fbmarket.Errorf(fbmarket.ETIMEOUT, "no elements matching %q after %s", selector, timeout)
		}
		return err
	}
	return nil
}

// FindElements returns all elements matching the selector in document order.
func (p *Page) FindElements(selector string) ([]fbmarket.Element, error) {
	els, err := p.page.Elements(selector)
	if err != nil {
		return nil, err
	}

	elements := make([]fbmarket.Element, 0, len(els))
	for _, el := range els {
		elements = append(elements, &Element{el: el})
	}
	return elements, nil
}

// VisibleText returns the rendered visible text of the page body.
func (p *Page) VisibleText() (string, error) {
	body, err := p.page.Element("body")
	if err != nil {
		return "", err
	}
	return body.Text()
}

// Close releases page resources.
func (p *Page) Close() error {
	return p.page.Close()
}

// Element wraps a rod element behind the fbmarket.Element interface.
type Element struct {
	el *rod.Element
}

// Attribute returns the value of the named attribute, or nil if absent.
func (e *Element) Attribute(name string) (*string, error) {
	return e.el.Attribute(name)
}

// VisibleText returns the rendered visible text of the element.
func (e *Element) VisibleText() (string, error) {
	return e.el.Text()
}

// FindElement returns the first descendant matching the selector. The
// lookup does not wait: an absent descendant returns ENOTFOUND right
// away, since by this point the page has already settled.
func (e *Element) FindElement(selector string) (fbmarket.Element, error) {
	el, err := e.el.Sleeper(rod.NotFoundSleeper).Element(selector)
	if err != nil {
		var notFound *rod.ElementNotFoundError
		if errors.As(err, &notFound) {
			return nil, fbmarket.Errorf(fbmarket.ENOTFOUND, "no elements matching %q", selector)
		}
		return nil, err
	}
	return &Element{el: el}, nil
}
