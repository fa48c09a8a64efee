package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/fbmarket"
	"github.com/fwojciec/fbmarket/gemini"
	"github.com/fwojciec/fbmarket/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsker_Ask_ReturnsErrorWhenNoListings(t *testing.T) {
	t.Parallel()

	listings := &mock.ListingService{
		FindListingsFn: func(context.Context, fbmarket.ListingFilter) ([]*fbmarket.StoredListing, error) {
			return []*fbmarket.StoredListing{}, nil
		},
	}

	asker := gemini.NewAsker(nil, listings) // nil client ok for this test

	_, err := asker.Ask(context.Background(), "fermenter", "what is the cheapest?")

	require.Error(t, err)
	assert.Equal(t, fbmarket.ENOTFOUND, fbmarket.ErrorCode(err))
	assert.Contains(t, fbmarket.ErrorMessage(err), "no listings")
}

func TestAsker_Ask_PropagatesListingServiceError(t *testing.T) {
	t.Parallel()

	expectedErr := fbmarket.Errorf(fbmarket.EINTERNAL, "database error")
	listings := &mock.ListingService{
		FindListingsFn: func(context.Context, fbmarket.ListingFilter) ([]*fbmarket.StoredListing, error) {
			return nil, expectedErr
		},
	}

	asker := gemini.NewAsker(nil, listings)

	_, err := asker.Ask(context.Background(), "fermenter", "what is the cheapest?")

	require.Error(t, err)
	assert.Equal(t, fbmarket.EINTERNAL, fbmarket.ErrorCode(err))
	assert.Contains(t, fbmarket.ErrorMessage(err), "database error")
}

func TestAsker_Ask_ReturnsErrorWhenQueryEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, nil)

	_, err := asker.Ask(context.Background(), "", "what is the cheapest?")

	require.Error(t, err)
	assert.Equal(t, fbmarket.EINVALID, fbmarket.ErrorCode(err))
	assert.Contains(t, fbmarket.ErrorMessage(err), "query required")
}

func TestAsker_Ask_ReturnsErrorWhenQuestionEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, nil)

	_, err := asker.Ask(context.Background(), "fermenter", "")

	require.Error(t, err)
	assert.Equal(t, fbmarket.EINVALID, fbmarket.ErrorCode(err))
	assert.Contains(t, fbmarket.ErrorMessage(err), "question required")
}

func TestAsker_Ask_RejectsOversizedPrompt(t *testing.T) {
	t.Parallel()

	listings := &mock.ListingService{
		FindListingsFn: func(context.Context, fbmarket.ListingFilter) ([]*fbmarket.StoredListing, error) {
			return []*fbmarket.StoredListing{{Title: "Fermenter", Price: "£45"}}, nil
		},
	}

	asker := gemini.NewAsker(nil, listings)
	asker.Tokens = &mock.TokenCounter{
		CountTokensFn: func(context.Context, string) (int, error) {
			return 500_000, nil
		},
	}

	_, err := asker.Ask(context.Background(), "fermenter", "what is the cheapest?")

	require.Error(t, err)
	assert.Equal(t, fbmarket.EINVALID, fbmarket.ErrorCode(err))
	assert.Contains(t, fbmarket.ErrorMessage(err), "context")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "helpful assistant")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

func TestBuildUserPrompt_ContainsListings(t *testing.T) {
	t.Parallel()

	listings := []*fbmarket.StoredListing{
		{Title: "Wide neck fermenter", Price: "£45", Location: "Brighton, UK", URL: fbmarket.ItemURL("111")},
	}

	prompt := gemini.BuildUserPrompt(listings, "What is the cheapest fermenter?")

	assert.Contains(t, prompt, "<listings>")
	assert.Contains(t, prompt, "Wide neck fermenter")
	assert.Contains(t, prompt, "£45")
	assert.Contains(t, prompt, "Brighton, UK")
	assert.Contains(t, prompt, fbmarket.ItemURL("111"))
	assert.Contains(t, prompt, "</listings>")
}

func TestBuildUserPrompt_ContainsQuestion(t *testing.T) {
	t.Parallel()

	listings := []*fbmarket.StoredListing{{Title: "Fermenter", Price: "£45"}}

	prompt := gemini.BuildUserPrompt(listings, "How many are free?")

	assert.Contains(t, prompt, "Question: How many are free?")
}

func TestBuildUserPrompt_FallsBackToURLWhenTitleEmpty(t *testing.T) {
	t.Parallel()

	listings := []*fbmarket.StoredListing{{URL: fbmarket.ItemURL("222")}}

	prompt := gemini.BuildUserPrompt(listings, "question")

	assert.Contains(t, prompt, "<title>"+fbmarket.ItemURL("222")+"</title>")
}

func TestBuildUserPrompt_DoesNotContainSystemInstruction(t *testing.T) {
	t.Parallel()

	listings := []*fbmarket.StoredListing{{Title: "Fermenter"}}

	prompt := gemini.BuildUserPrompt(listings, "question")

	assert.NotContains(t, prompt, "You are a helpful assistant")
}
