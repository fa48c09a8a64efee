package fbmarket_test

import (
	"testing"

	"github.com/fwojciec/fbmarket"
	"github.com/stretchr/testify/assert"
)

func TestSearchURL(t *testing.T) {
	t.Parallel()

	t.Run("builds URL with defaults", func(t *testing.T) {
		t.Parallel()

		s := fbmarket.Search{Query: "brewing fermenter"}

		assert.Equal(t,
			"https://www.facebook.com/marketplace/108339199186201/search?query=brewing+fermenter&locale=en_GB",
			s.URL())
	})

	t.Run("uses explicit location and locale", func(t *testing.T) {
		t.Parallel()

		s := fbmarket.Search{Query: "bike", LocationID: "112548152092705", Locale: "en_US"}

		assert.Equal(t,
			"https://www.facebook.com/marketplace/112548152092705/search?query=bike&locale=en_US",
			s.URL())
	})

	t.Run("appends days filter when set", func(t *testing.T) {
		t.Parallel()

		s := fbmarket.Search{Query: "bike", DaysListed: 7}

		assert.Equal(t,
			"https://www.facebook.com/marketplace/108339199186201/search?query=bike&locale=en_GB&daysSinceListed=7",
			s.URL())
	})
}

func TestSearchValidate(t *testing.T) {
	t.Parallel()

	t.Run("requires query", func(t *testing.T) {
		t.Parallel()

		err := fbmarket.Search{}.Validate()

		assert.Equal(t, fbmarket.EINVALID, fbmarket.ErrorCode(err))
	})

	t.Run("accepts valid search", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, fbmarket.Search{Query: "bike"}.Validate())
	})
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application errors", func(t *testing.T) {
		t.Parallel()

		err := fbmarket.Errorf(fbmarket.ETIMEOUT, "no listings appeared")

		assert.Equal(t, fbmarket.ETIMEOUT, fbmarket.ErrorCode(err))
		assert.Equal(t, "no listings appeared", fbmarket.ErrorMessage(err))
	})

	t.Run("returns EINTERNAL for other errors", func(t *testing.T) {
		t.Parallel()

		err := assert.AnError

		assert.Equal(t, fbmarket.EINTERNAL, fbmarket.ErrorCode(err))
		assert.Equal(t, "Internal error.", fbmarket.ErrorMessage(err))
	})

	t.Run("returns empty strings for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", fbmarket.ErrorCode(nil))
		assert.Equal(t, "", fbmarket.ErrorMessage(nil))
	})
}
