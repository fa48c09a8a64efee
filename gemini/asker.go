package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/fbmarket"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// maxPromptTokens caps the listing context sent to the model.
const maxPromptTokens = 200_000

// Ensure Asker implements fbmarket.Asker at compile time.
var _ fbmarket.Asker = (*Asker)(nil)

// Asker implements fbmarket.Asker using Google Gemini.
type Asker struct {
	client   *genai.Client
	listings fbmarket.ListingService

	// Tokens, if set, guards against prompts that exceed the model's
	// context window.
	Tokens fbmarket.TokenCounter
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, listings fbmarket.ListingService) *Asker {
	return &Asker{client: client, listings: listings}
}

// Ask answers a natural language question about the listings saved for a query.
func (a *Asker) Ask(ctx context.Context, query, question string) (string, error) {
	if query == "" {
		return "", fbmarket.Errorf(fbmarket.EINVALID, "query required")
	}
	if question == "" {
		return "", fbmarket.Errorf(fbmarket.EINVALID, "question required")
	}

	listings, err := a.listings.FindListings(ctx, fbmarket.ListingFilter{Query: &query})
	if err != nil {
		return "", err
	}
	if len(listings) == 0 {
		return "", fbmarket.Errorf(fbmarket.ENOTFOUND, "no listings found for query %q", query)
	}

	prompt := BuildUserPrompt(listings, question)

	if a.Tokens != nil {
		count, err := a.Tokens.CountTokens(ctx, prompt)
		if err != nil {
			return "", err
		}
		if count > maxPromptTokens {
			return "", fbmarket.Errorf(fbmarket.EINVALID, "saved listings for %q exceed the model context (%d tokens)", query, count)
		}
	}

	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", fbmarket.Errorf(fbmarket.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about saved marketplace listings. Answer based only on the listings provided. If the answer is not in the listings, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the saved listings and question.
func BuildUserPrompt(listings []*fbmarket.StoredListing, question string) string {
	var sb strings.Builder
	sb.WriteString("<listings>\n")
	for i, listing := range listings {
		title := listing.Title
		if title == "" {
			title = listing.URL
		}
		sb.WriteString("<listing>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
		fmt.Fprintf(&sb, "<price>%s</price>\n", listing.Price)
		fmt.Fprintf(&sb, "<location>%s</location>\n", listing.Location)
		fmt.Fprintf(&sb, "<url>%s</url>\n", listing.URL)
		fmt.Fprintf(&sb, "<first_seen>%s</first_seen>\n", listing.FirstSeenAt.Format(time.RFC3339))
		fmt.Fprintf(&sb, "<last_seen>%s</last_seen>\n", listing.LastSeenAt.Format(time.RFC3339))
		sb.WriteString("</listing>\n")
	}
	sb.WriteString("</listings>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
