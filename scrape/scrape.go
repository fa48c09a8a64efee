// Package scrape provides marketplace scraping orchestration. It
// coordinates page navigation, element waits, and rate limiting around
// the pure extraction core in package extract. All I/O happens before
// extraction runs: the core only ever sees already-retrieved text.
package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/fbmarket"
	"github.com/fwojciec/fbmarket/extract"
	"golang.org/x/sync/errgroup"
)

// AnchorSelector matches the listing anchors on a search results page.
const AnchorSelector = `a[href*="/marketplace/item/"]`

// DefaultWaitTimeout is how long to wait for listing anchors to appear
// before the search pass fails with ETIMEOUT.
const DefaultWaitTimeout = 15 * time.Second

// DefaultConcurrency bounds parallel detail-page fetches.
const DefaultConcurrency = 3

// Ensure Scraper implements fbmarket.MarketplaceService at compile time.
var _ fbmarket.MarketplaceService = (*Scraper)(nil)

// Scraper implements fbmarket.MarketplaceService on top of a Browser.
// Per-anchor problems are absorbed by the extraction core; only
// browser-level failures (navigation, timeouts, read errors) surface
// to the caller.
type Scraper struct {
	Browser fbmarket.Browser

	// Limiter, if set, paces page loads.
	Limiter fbmarket.Limiter

	// WaitTimeout overrides DefaultWaitTimeout when positive.
	WaitTimeout time.Duration

	// RetryDelays overrides the page-open retry backoff. Retrying is an
	// orchestration concern; the extraction core never retries.
	RetryDelays []time.Duration

	// Concurrency bounds AllListingDetails. Defaults to DefaultConcurrency.
	Concurrency int

	// Logger, if set, receives retry diagnostics.
	Logger LogFunc

	// Dumps, if set, receives page text captures for troubleshooting
	// extraction against real pages.
	Dumps fbmarket.DumpWriter
}

// SearchListings runs one marketplace search and returns the extracted
// listing summaries in first-seen order.
func (s *Scraper) SearchListings(ctx context.Context, search fbmarket.Search) ([]*fbmarket.ListingSummary, error) {
	if err := search.Validate(); err != nil {
		return nil, err
	}

	page, err := s.open(ctx, search.URL())
	if err != nil {
		return nil, err
	}
	defer page.Close()

	summaries, err := s.SummariesFromPage(ctx, page)
	// Capture the page even when extraction fails; a failed pass is
	// exactly when the raw text is worth inspecting.
	s.dumpPage(ctx, search.Query, search.URL(), page)
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// SummariesFromPage extracts listing summaries from an already-rendered
// page. Exposed so offline pages (saved HTML) can go through the same
// path as live ones.
func (s *Scraper) SummariesFromPage(ctx context.Context, page fbmarket.Page) ([]*fbmarket.ListingSummary, error) {
	if err := page.WaitForElements(ctx, AnchorSelector, s.waitTimeout()); err != nil {
		return nil, err
	}

	elements, err := page.FindElements(AnchorSelector)
	if err != nil {
		return nil, err
	}

	anchors, err := collectAnchors(elements)
	if err != nil {
		return nil, err
	}

	return extract.Summaries(anchors), nil
}

// ListingDetails retrieves and extracts the detail record for one listing.
func (s *Scraper) ListingDetails(ctx context.Context, listingID string) (*fbmarket.ListingDetail, error) {
	if listingID == "" {
		return nil, fbmarket.Errorf(fbmarket.EINVALID, "listing ID required")
	}

	page, err := s.open(ctx, fbmarket.ItemURL(listingID))
	if err != nil {
		return nil, err
	}
	defer page.Close()

	return s.DetailFromPage(ctx, listingID, page)
}

// DetailFromPage extracts the detail record from an already-rendered item
// page.
func (s *Scraper) DetailFromPage(ctx context.Context, listingID string, page fbmarket.Page) (*fbmarket.ListingDetail, error) {
	text, err := page.VisibleText()
	if err != nil {
		return nil, err
	}
	if s.Dumps != nil {
		_ = s.Dumps.SaveDump(ctx, &fbmarket.Dump{
			Name: listingID,
			URL:  fbmarket.ItemURL(listingID),
			Text: text,
		})
	}
	return extract.Detail(listingID, fbmarket.ItemURL(listingID), text), nil
}

// AllListingDetails retrieves detail records for several listings with
// bounded concurrency. Results are returned in input order. The first
// browser-level failure cancels the remaining fetches.
func (s *Scraper) AllListingDetails(ctx context.Context, listingIDs []string) ([]*fbmarket.ListingDetail, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	details := make([]*fbmarket.ListingDetail, len(listingIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, id := range listingIDs {
		g.Go(func() error {
			detail, err := s.ListingDetails(gctx, id)
			if err != nil {
				return fmt.Errorf("listing %s: %w", id, err)
			}
			details[i] = detail
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}

// open waits on the limiter and opens the URL, retrying with backoff.
func (s *Scraper) open(ctx context.Context, url string) (fbmarket.Page, error) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return OpenWithRetryDelays(ctx, s.Browser, url, s.Logger, delays)
}

// dumpPage saves the page's rendered text, best effort.
func (s *Scraper) dumpPage(ctx context.Context, name, url string, page fbmarket.Page) {
	if s.Dumps == nil {
		return
	}
	text, err := page.VisibleText()
	if err != nil {
		return
	}
	_ = s.Dumps.SaveDump(ctx, &fbmarket.Dump{Name: name, URL: url, Text: text})
}

func (s *Scraper) waitTimeout() time.Duration {
	if s.WaitTimeout > 0 {
		return s.WaitTimeout
	}
	return DefaultWaitTimeout
}

// collectAnchors reads each anchor element into a descriptor. A missing
// href leaves the descriptor's Href empty, which the extractor then
// skips; a missing child image is simply an absent image URL. Read
// errors propagate: they indicate a broken page session, not a bad
// anchor.
func collectAnchors(elements []fbmarket.Element) ([]fbmarket.Anchor, error) {
	anchors := make([]fbmarket.Anchor, 0, len(elements))

	for _, el := range elements {
		href, err := el.Attribute("href")
		if err != nil {
			return nil, err
		}
		text, err := el.VisibleText()
		if err != nil {
			return nil, err
		}

		anchor := fbmarket.Anchor{Text: text}
		if href != nil {
			anchor.Href = *href
		}

		img, err := el.FindElement("img")
		if err != nil {
			if fbmarket.ErrorCode(err) != fbmarket.ENOTFOUND {
				return nil, err
			}
		} else {
			src, err := img.Attribute("src")
			if err != nil {
				return nil, err
			}
			anchor.ImageURL = src
		}

		anchors = append(anchors, anchor)
	}

	return anchors, nil
}
