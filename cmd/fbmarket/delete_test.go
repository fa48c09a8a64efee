package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/fbmarket"
	main "github.com/fwojciec/fbmarket/cmd/fbmarket"
	"github.com/fwojciec/fbmarket/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes saved listings when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedQuery string
		listings := &mock.ListingService{
			DeleteListingsByQueryFn: func(_ context.Context, query string) error {
				deletedQuery = query
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Listings: listings,
		}

		cmd := &main.DeleteCmd{Query: "fermenter", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "fermenter", deletedQuery)
		assert.Contains(t, stdout.String(), "Deleted")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.DeleteCmd{Query: "fermenter", Force: false}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("explains when nothing is saved for the query", func(t *testing.T) {
		t.Parallel()

		listings := &mock.ListingService{
			DeleteListingsByQueryFn: func(_ context.Context, query string) error {
				return fbmarket.Errorf(fbmarket.ENOTFOUND, "no listings found for query %q", query)
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Listings: listings,
		}

		cmd := &main.DeleteCmd{Query: "fermenter", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, fbmarket.ENOTFOUND, fbmarket.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no saved listings")
	})
}
