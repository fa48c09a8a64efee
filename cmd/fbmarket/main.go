package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/fbmarket"
	"github.com/fwojciec/fbmarket/fs"
	"github.com/fwojciec/fbmarket/gemini"
	fbrod "github.com/fwojciec/fbmarket/rod"
	"github.com/fwojciec/fbmarket/scrape"
	fbslog "github.com/fwojciec/fbmarket/slog"
	"github.com/fwojciec/fbmarket/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// ListingService for end-to-end testing.
	ListingService fbmarket.ListingService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fbmarket"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'fbmarket --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set FBMARKET_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ListingService = sqlite.NewListingService(m.DB)
	deps.DB = m.DB
	deps.Listings = fbslog.NewLoggingListingService(m.ListingService, logger)

	// Wire the scraper. Commands that only read saved state never touch it.
	scraper := &scrape.Scraper{
		Logger: func(format string, a ...any) {
			logger.Debug(fmt.Sprintf(format, a...))
		},
	}
	deps.Scraper = scraper
	deps.Marketplace = fbslog.NewLoggingMarketplaceService(scraper, logger)

	var noHeadless bool
	var debugDir string
	rps := 0.5
	switch cmd {
	case "search":
		noHeadless = cli.Search.NoHeadless
		debugDir = cli.Search.Debug
		rps = cli.Search.RPS
		scraper.Concurrency = cli.Search.Concurrency
	case "item":
		noHeadless = cli.Item.NoHeadless
		debugDir = cli.Item.Debug
		rps = cli.Item.RPS
		scraper.Concurrency = cli.Item.Concurrency
	}

	if debugDir != "" {
		scraper.Dumps = fs.NewDumpWriter(debugDir)
	}

	needBrowser := (cmd == "item" && cli.Item.FromFile == "") || (cmd == "search" && cli.Search.FromFile == "")
	if needBrowser {
		browser, err := fbrod.NewBrowser(fbrod.WithHeadless(!noHeadless))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer browser.Close()

		scraper.Browser = fbrod.NewLoggingBrowser(browser, logger)
		scraper.Limiter = scrape.NewRateLimiter(rps)
	}

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		asker := gemini.NewAsker(client, deps.Listings)
		if tokens, err := gemini.NewTokenCounter(tokenizerModel); err == nil {
			asker.Tokens = tokens
		}
		deps.Asker = asker
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for prompt size checks before calling the API.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("FBMARKET_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "fbmarket.db"
	}
	dir := filepath.Join(home, ".fbmarket")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "fbmarket.db")
}
