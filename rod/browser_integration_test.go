//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/fbmarket"
	fbrod "github.com/fwojciec/fbmarket/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPageHTML = `<!doctype html>
<html><body>
<div>
  <a href="/marketplace/item/111222333/?ref=search">
    <img src="https://images.example.com/one.jpg">
    <span>£45</span>
    <span>Great Fermenter</span>
    <span>Brighton, UK</span>
  </a>
  <a href="/marketplace/item/444555666/">
    <span>Free</span>
    <span>Old sofa anyone</span>
  </a>
</div>
</body></html>`

func TestBrowser_Integration_RendersListingPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listingPageHTML))
	}))
	defer srv.Close()

	browser, err := fbrod.NewBrowser(fbrod.WithSettleDelay(0))
	require.NoError(t, err)
	defer browser.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	page, err := browser.Open(ctx, srv.URL)
	require.NoError(t, err)
	defer page.Close()

	err = page.WaitForElements(ctx, `a[href*="/marketplace/item/"]`, 5*time.Second)
	require.NoError(t, err)

	elements, err := page.FindElements(`a[href*="/marketplace/item/"]`)
	require.NoError(t, err)
	require.Len(t, elements, 2)

	href, err := elements[0].Attribute("href")
	require.NoError(t, err)
	require.NotNil(t, href)
	assert.Contains(t, *href, "/marketplace/item/111222333")

	text, err := elements[0].VisibleText()
	require.NoError(t, err)
	assert.Contains(t, text, "Great Fermenter")

	img, err := elements[0].FindElement("img")
	require.NoError(t, err)
	src, err := img.Attribute("src")
	require.NoError(t, err)
	require.NotNil(t, src)
	assert.Equal(t, "https://images.example.com/one.jpg", *src)

	_, err = elements[1].FindElement("img")
	assert.Equal(t, fbmarket.ENOTFOUND, fbmarket.ErrorCode(err))

	body, err := page.VisibleText()
	require.NoError(t, err)
	assert.Contains(t, body, "Brighton, UK")
}

func TestBrowser_Integration_WaitForElementsTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<!doctype html><html><body><p>nothing here</p></body></html>`))
	}))
	defer srv.Close()

	browser, err := fbrod.NewBrowser(fbrod.WithSettleDelay(0))
	require.NoError(t, err)
	defer browser.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	page, err := browser.Open(ctx, srv.URL)
	require.NoError(t, err)
	defer page.Close()

	err = page.WaitForElements(ctx, `a[href*="/marketplace/item/"]`, time.Second)
	assert.Equal(t, fbmarket.ETIMEOUT, fbmarket.ErrorCode(err))
}
