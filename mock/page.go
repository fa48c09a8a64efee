package mock

import (
	"context"
	"time"

	"github.com/fwojciec/fbmarket"
)

// Compile-time interface verification.
var (
	_ fbmarket.Browser = (*Browser)(nil)
	_ fbmarket.Page    = (*Page)(nil)
	_ fbmarket.Element = (*Element)(nil)
)

// Browser is a mock implementation of fbmarket.Browser.
type Browser struct {
	OpenFn  func(ctx context.Context, url string) (fbmarket.Page, error)
	CloseFn func() error
}

func (b *Browser) Open(ctx context.Context, url string) (fbmarket.Page, error) {
	return b.OpenFn(ctx, url)
}

func (b *Browser) Close() error {
	if b.CloseFn == nil {
		return nil
	}
	return b.CloseFn()
}

// Page is a mock implementation of fbmarket.Page.
type Page struct {
	WaitForElementsFn func(ctx context.Context, selector string, timeout time.Duration) error
	FindElementsFn    func(selector string) ([]fbmarket.Element, error)
	VisibleTextFn     func() (string, error)
	CloseFn           func() error
}

func (p *Page) WaitForElements(ctx context.Context, selector string, timeout time.Duration) error {
	return p.WaitForElementsFn(ctx, selector, timeout)
}

func (p *Page) FindElements(selector string) ([]fbmarket.Element, error) {
	return p.FindElementsFn(selector)
}

func (p *Page) VisibleText() (string, error) {
	return p.VisibleTextFn()
}

func (p *Page) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}

// Element is a mock implementation of fbmarket.Element.
type Element struct {
	AttributeFn   func(name string) (*string, error)
	VisibleTextFn func() (string, error)
	FindElementFn func(selector string) (fbmarket.Element, error)
}

func (e *Element) Attribute(name string) (*string, error) {
	return e.AttributeFn(name)
}

func (e *Element) VisibleText() (string, error) {
	return e.VisibleTextFn()
}

func (e *Element) FindElement(selector string) (fbmarket.Element, error) {
	if e.FindElementFn == nil {
		return nil, fbmarket.Errorf(fbmarket.ENOTFOUND, "element not found")
	}
	return e.FindElementFn(selector)
}
