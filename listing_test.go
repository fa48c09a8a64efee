package fbmarket_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fwojciec/fbmarket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://www.facebook.com/marketplace/item/123456789", fbmarket.ItemURL("123456789"))
}

func TestListingSummaryJSON(t *testing.T) {
	t.Parallel()

	t.Run("round-trips field for field", func(t *testing.T) {
		t.Parallel()

		img := "https://scontent.example.com/img.jpg"
		summary := &fbmarket.ListingSummary{
			ListingID: "123456789",
			Title:     "Great Fermenter",
			Price:     "£45",
			Location:  "Brighton, UK",
			URL:       fbmarket.ItemURL("123456789"),
			ImageURL:  &img,
		}

		data, err := json.Marshal(summary)
		require.NoError(t, err)

		var decoded fbmarket.ListingSummary
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, *summary, decoded)
	})

	t.Run("serializes absent image URL as null", func(t *testing.T) {
		t.Parallel()

		summary := &fbmarket.ListingSummary{
			ListingID: "1",
			Title:     "Listing 1",
			Price:     "Price not listed",
			URL:       fbmarket.ItemURL("1"),
		}

		data, err := json.Marshal(summary)
		require.NoError(t, err)

		assert.Contains(t, string(data), `"image_url":null`)
		assert.Contains(t, string(data), `"listing_id":"1"`)
	})
}

func TestListingDetailJSON(t *testing.T) {
	t.Parallel()

	t.Run("round-trips field for field", func(t *testing.T) {
		t.Parallel()

		condition := "Used - Good"
		listed := "Listed 3 days ago"
		detail := &fbmarket.ListingDetail{
			ListingID:   "987",
			Title:       "Great Fermenter",
			Price:       "£45",
			Location:    "Brighton, UK",
			Description: "25L capacity, barely used",
			Condition:   &condition,
			ListedDate:  &listed,
			URL:         fbmarket.ItemURL("987"),
		}

		data, err := json.Marshal(detail)
		require.NoError(t, err)

		var decoded fbmarket.ListingDetail
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, *detail, decoded)
	})

	t.Run("serializes absent optional fields as null", func(t *testing.T) {
		t.Parallel()

		detail := &fbmarket.ListingDetail{ListingID: "987", URL: fbmarket.ItemURL("987")}

		data, err := json.Marshal(detail)
		require.NoError(t, err)

		assert.Contains(t, string(data), `"condition":null`)
		assert.Contains(t, string(data), `"listed_date":null`)
	})
}

func TestStoredListingValidate(t *testing.T) {
	t.Parallel()

	t.Run("requires listing ID", func(t *testing.T) {
		t.Parallel()

		listing := &fbmarket.StoredListing{Query: "fermenter"}

		err := listing.Validate()

		assert.Equal(t, fbmarket.EINVALID, fbmarket.ErrorCode(err))
	})

	t.Run("requires query", func(t *testing.T) {
		t.Parallel()

		listing := &fbmarket.StoredListing{ListingID: "123"}

		err := listing.Validate()

		assert.Equal(t, fbmarket.EINVALID, fbmarket.ErrorCode(err))
	})

	t.Run("accepts valid listing", func(t *testing.T) {
		t.Parallel()

		listing := &fbmarket.StoredListing{ListingID: "123", Query: "fermenter"}

		assert.NoError(t, listing.Validate())
	})
}

func TestStoredListingNew(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	assert.True(t, (&fbmarket.StoredListing{FirstSeenAt: now, LastSeenAt: now}).New())
	assert.False(t, (&fbmarket.StoredListing{FirstSeenAt: now, LastSeenAt: now.Add(time.Hour)}).New())
}
