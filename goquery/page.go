// Package goquery provides a static-HTML implementation of the page
// capabilities using the goquery library. It parses saved marketplace
// pages without a browser, which makes offline extraction and testing
// possible.
package goquery

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fbmarket"
)

// Ensure implementations satisfy the interfaces at compile time.
var (
	_ fbmarket.Page    = (*Page)(nil)
	_ fbmarket.Element = (*Element)(nil)
)

// Page is a parsed HTML document. It implements fbmarket.Page over a
// static document, so selectors either match immediately or never.
type Page struct {
	doc *goquery.Document
}

// NewPage parses the given HTML and returns a Page.
func NewPage(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fbmarket.Errorf(fbmarket.EINVALID, "parse html: %v", err)
	}
	return &Page{doc: doc}, nil
}

// NewPageFromFile reads and parses an HTML file.
func NewPageFromFile(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fbmarket.Errorf(fbmarket.ENOTFOUND, "page file not found: %s", path)
		}
		return nil, err
	}
	return NewPage(string(data))
}

// WaitForElements checks whether the selector matches. A static document
// never changes, so a missing selector fails immediately with ETIMEOUT
// rather than waiting out the timeout.
func (p *Page) WaitForElements(_ context.Context, selector string, _ time.Duration) error {
	if p.doc.Find(selector).Length() == 0 {
		return fbmarket.Errorf(fbmarket.ETIMEOUT, "no elements matching %q", selector)
	}
	return nil
}

// FindElements returns all elements matching the selector in document order.
func (p *Page) FindElements(selector string) ([]fbmarket.Element, error) {
	sel := p.doc.Find(selector)
	elements := make([]fbmarket.Element, 0, sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		elements = append(elements, &Element{sel: s})
	})
	return elements, nil
}

// VisibleText renders the text of the document body with newlines at
// block element boundaries.
func (p *Page) VisibleText() (string, error) {
	body := p.doc.Find("body")
	if body.Length() == 0 {
		return renderText(p.doc.Selection), nil
	}
	return renderText(body), nil
}

// Close is a no-op; a parsed document holds no external resources.
func (p *Page) Close() error {
	return nil
}

// Element is a handle to one element in a parsed document.
type Element struct {
	sel *goquery.Selection
}

// Attribute returns the value of the named attribute, or nil if absent.
func (e *Element) Attribute(name string) (*string, error) {
	val, ok := e.sel.Attr(name)
	if !ok {
		return nil, nil
	}
	return &val, nil
}

// VisibleText renders the text of the element with newlines at block
// element boundaries.
func (e *Element) VisibleText() (string, error) {
	return renderText(e.sel), nil
}

// FindElement returns the first descendant matching the selector.
func (e *Element) FindElement(selector string) (fbmarket.Element, error) {
	found := e.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, fbmarket.Errorf(fbmarket.ENOTFOUND, "no element matching %q", selector)
	}
	return &Element{sel: found}, nil
}
