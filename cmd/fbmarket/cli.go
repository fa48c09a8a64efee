package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/fbmarket"
	"github.com/fwojciec/fbmarket/scrape"
	"github.com/fwojciec/fbmarket/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	DB          *sqlite.DB
	Listings    fbmarket.ListingService
	Marketplace fbmarket.MarketplaceService
	Scraper     *scrape.Scraper
	Asker       fbmarket.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Search   SearchCmd   `cmd:"" help:"Search the marketplace and extract listing summaries"`
	Item     ItemCmd     `cmd:"" help:"Extract full details for one or more listings"`
	Listings ListingsCmd `cmd:"" help:"Show listings saved from earlier searches"`
	Delete   DeleteCmd   `cmd:"" help:"Delete saved listings for a query"`
	Ask      AskCmd      `cmd:"" help:"Ask a question about saved listings"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query       string  `arg:"" help:"Search query"`
	Location    string  `short:"l" help:"Facebook location ID"`
	Locale      string  `help:"Locale for search results"`
	Days        int     `short:"d" help:"Only listings from the last N days"`
	Details     bool    `help:"Fetch full details for every result"`
	Save        bool    `short:"s" help:"Persist results for change tracking"`
	JSON        bool    `short:"j" name:"json" help:"Output as JSON"`
	FromFile    string  `name:"from-file" type:"path" help:"Extract from a saved HTML page instead of the live site"`
	Debug       string  `type:"path" help:"Directory for page text captures"`
	NoHeadless  bool    `help:"Show the browser window"`
	RPS         float64 `default:"0.5" help:"Page loads per second"`
	Concurrency int     `short:"c" default:"3" help:"Concurrent detail fetch limit"`
}

// ItemCmd is the "item" subcommand.
type ItemCmd struct {
	IDs         []string `arg:"" name:"id" help:"Listing IDs or item URLs"`
	JSON        bool     `short:"j" name:"json" help:"Output as JSON"`
	FromFile    string   `name:"from-file" type:"path" help:"Extract from a saved HTML page instead of the live site"`
	Debug       string   `type:"path" help:"Directory for page text captures"`
	NoHeadless  bool     `help:"Show the browser window"`
	RPS         float64  `default:"0.5" help:"Page loads per second"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent fetch limit"`
}

// ListingsCmd is the "listings" subcommand.
type ListingsCmd struct {
	Query  string `arg:"" optional:"" help:"Restrict to one search query"`
	New    bool   `name:"new" help:"Only listings first seen on their last save"`
	Limit  int    `help:"Maximum listings to show"`
	Offset int    `help:"Listings to skip"`
	JSON   bool   `short:"j" name:"json" help:"Output as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Query string `arg:"" help:"Search query whose listings to delete"`
	Force bool   `help:"Confirm deletion"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Query    string `arg:"" help:"Search query whose saved listings to ask about"`
	Question string `arg:"" help:"Question to ask about the listings"`
}
