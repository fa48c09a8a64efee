package extract_test

import (
	"testing"

	"github.com/fwojciec/fbmarket/extract"
	"github.com/stretchr/testify/assert"
)

func TestListingID(t *testing.T) {
	t.Parallel()

	t.Run("extracts digits after the item path segment", func(t *testing.T) {
		t.Parallel()

		id, ok := extract.ListingID("/marketplace/item/123456789/?ref=search")

		assert.True(t, ok)
		assert.Equal(t, "123456789", id)
	})

	t.Run("handles absolute URLs", func(t *testing.T) {
		t.Parallel()

		id, ok := extract.ListingID("https://www.facebook.com/marketplace/item/42")

		assert.True(t, ok)
		assert.Equal(t, "42", id)
	})

	t.Run("takes the maximal digit run", func(t *testing.T) {
		t.Parallel()

		id, ok := extract.ListingID("/marketplace/item/1234567890123456")

		assert.True(t, ok)
		assert.Equal(t, "1234567890123456", id)
	})

	t.Run("returns no match without the segment", func(t *testing.T) {
		t.Parallel()

		_, ok := extract.ListingID("/marketplace/category/12345")

		assert.False(t, ok)
	})

	t.Run("returns no match for empty href", func(t *testing.T) {
		t.Parallel()

		_, ok := extract.ListingID("")

		assert.False(t, ok)
	})

	t.Run("returns no match when segment has no digits", func(t *testing.T) {
		t.Parallel()

		_, ok := extract.ListingID("/marketplace/item/abc")

		assert.False(t, ok)
	})
}

func TestLines(t *testing.T) {
	t.Parallel()

	t.Run("splits, trims, and drops empties", func(t *testing.T) {
		t.Parallel()

		lines := extract.Lines("  £45 \n\nGreat Fermenter\n   \nBrighton, UK\n")

		assert.Equal(t, []string{"£45", "Great Fermenter", "Brighton, UK"}, lines)
	})

	t.Run("preserves order and duplicates", func(t *testing.T) {
		t.Parallel()

		lines := extract.Lines("a\nb\na")

		assert.Equal(t, []string{"a", "b", "a"}, lines)
	})

	t.Run("returns nil for blank text", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract.Lines("  \n \n"))
		assert.Empty(t, extract.Lines(""))
	})
}
