package fbmarket

import "context"

// Asker provides natural language question answering over saved listings.
type Asker interface {
	// Ask answers a question about the listings saved for a query.
	// Returns ENOTFOUND if no listings are saved for the query.
	Ask(ctx context.Context, query string, question string) (string, error)
}

// TokenCounter counts model tokens in a piece of text.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
