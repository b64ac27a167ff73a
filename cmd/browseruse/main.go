package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/rknoche6/fast-browser-use/capture"
	"github.com/rknoche6/fast-browser-use/chromedp"
	"github.com/rknoche6/fast-browser-use/fs"
	"github.com/rknoche6/fast-browser-use/goquery"
	"github.com/rknoche6/fast-browser-use/html"
	"github.com/rknoche6/fast-browser-use/htmltomarkdown"
	bhttp "github.com/rknoche6/fast-browser-use/http"
	"github.com/rknoche6/fast-browser-use/readability"
	"github.com/rknoche6/fast-browser-use/rod"
	bslog "github.com/rknoche6/fast-browser-use/slog"
	"github.com/rknoche6/fast-browser-use/sqlite"
	"github.com/rknoche6/fast-browser-use/trafilatura"
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

	// Service for end-to-end testing.
	CaptureService browseruse.CaptureService
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("browseruse"),
		kong.Description("Extract structured snapshots and readable markdown from web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'browseruse --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BROWSERUSE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.CaptureService = sqlite.NewCaptureService(m.DB)
	deps.DB = m.DB
	deps.Captures = m.CaptureService

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Wire command-specific dependencies based on command
	switch cmd {
	case "snapshot":
		if !cli.Snapshot.Static {
			browser, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer browser.Close()
			deps.Browser = browser
		} else {
			deps.Fetcher = bhttp.NewFetcher()
		}

	case "markdown":
		fetcher, err := newFetcher(cli.Markdown.Fetcher, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()
		deps.Fetcher = fetcher
		deps.Renderer = newRenderer(cli.Markdown.Engine, cli.Markdown.Extractor)

	case "capture":
		fetcher, err := newFetcher(cli.Capture.Fetcher, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		var store browseruse.CaptureWriter = m.CaptureService
		if cli.Capture.Dir != "" {
			store = fs.NewWriter(cli.Capture.Dir)
		}

		deps.Source = bslog.NewLoggingSource(bhttp.NewSitemapSource(nil), logger)
		deps.Capturer = &capture.Capturer{
			Source:      deps.Source,
			Fetcher:     rod.NewLoggingFetcher(fetcher, logger),
			Renderer:    newRenderer(cli.Capture.Engine, "policy"),
			Store:       bslog.NewLoggingWriter(store, logger),
			RateLimiter: capture.NewDomainLimiter(cli.Capture.Rate),
			Concurrency: cli.Capture.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher creates the page fetcher selected by name.
func newFetcher(name string, stderr io.Writer) (browseruse.Fetcher, error) {
	switch name {
	case "chromedp":
		return chromedp.NewFetcher(), nil
	case "http":
		return bhttp.NewFetcher(), nil
	default:
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return fetcher, nil
	}
}

// newRenderer creates the content renderer for the selected engine.
func newRenderer(engine, extractor string) browseruse.ContentRenderer {
	if engine == "native" {
		return html.NewEngine()
	}

	var ex browseruse.Extractor
	switch extractor {
	case "trafilatura":
		ex = trafilatura.NewExtractor()
	case "readability":
		ex = readability.NewExtractor()
	default:
		ex = goquery.NewExtractor()
	}

	return &browseruse.ExtractConvert{
		Extractor: ex,
		Converter: htmltomarkdown.NewConverter(),
	}
}

func defaultDBPath() string {
	if path := os.Getenv("BROWSERUSE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "browseruse.db"
	}
	dir := filepath.Join(home, ".browseruse")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "browseruse.db")
}
