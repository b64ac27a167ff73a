package main

import (
	"context"
	"io"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/rknoche6/fast-browser-use/capture"
	"github.com/rknoche6/fast-browser-use/rod"
	"github.com/rknoche6/fast-browser-use/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Captures browseruse.CaptureService
	Fetcher  browseruse.Fetcher
	Browser  *rod.Fetcher
	Renderer browseruse.ContentRenderer
	Source   browseruse.URLSource
	Capturer *capture.Capturer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Snapshot SnapshotCmd `cmd:"" help:"Extract a DOM snapshot of a page as JSON"`
	Markdown MarkdownCmd `cmd:"" help:"Render a page's readable content as markdown"`
	Capture  CaptureCmd  `cmd:"" help:"Capture a whole site into the database or a directory"`
	Captures CapturesCmd `cmd:"" help:"Manage stored captures"`
}

// SnapshotCmd is the "snapshot" subcommand.
type SnapshotCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Depth  int    `short:"d" default:"10" help:"Maximum tree depth"`
	Pretty bool   `help:"Indent the JSON output"`
	Static bool   `help:"Parse the raw HTML without a browser (no geometry)"`
	Save   bool   `help:"Store the snapshot in the capture database"`
	Out    string `short:"o" help:"Write output to a file instead of stdout"`
}

// MarkdownCmd is the "markdown" subcommand.
type MarkdownCmd struct {
	URL       string `arg:"" help:"Page URL"`
	Engine    string `default:"native" enum:"native,commonmark" help:"Markdown engine (native, commonmark)"`
	Extractor string `default:"policy" enum:"policy,trafilatura,readability" help:"Content extractor for the commonmark engine"`
	Fetcher   string `default:"rod" enum:"rod,chromedp,http" env:"BROWSERUSE_BROWSER" help:"Page fetcher (rod, chromedp, http)"`
	JSON      bool   `help:"Print the full result as JSON"`
	Out       string `short:"o" help:"Write output to a file instead of stdout"`
}

// CaptureCmd is the "capture" subcommand.
type CaptureCmd struct {
	URL         string  `arg:"" help:"Site URL"`
	Dir         string  `help:"Write markdown files to a directory instead of the database"`
	Concurrency int     `short:"c" default:"10" help:"Concurrent fetch limit"`
	Rate        float64 `default:"1" help:"Requests per second per domain"`
	Engine      string  `default:"native" enum:"native,commonmark" help:"Markdown engine (native, commonmark)"`
	Fetcher     string  `default:"rod" enum:"rod,chromedp,http" env:"BROWSERUSE_BROWSER" help:"Page fetcher (rod, chromedp, http)"`
}

// CapturesCmd groups the capture management subcommands.
type CapturesCmd struct {
	List   CapturesListCmd   `cmd:"" help:"List stored captures"`
	Show   CapturesShowCmd   `cmd:"" help:"Show a stored capture"`
	Delete CapturesDeleteCmd `cmd:"" help:"Delete a stored capture"`
}

// CapturesListCmd is the "captures list" subcommand.
type CapturesListCmd struct {
	URL   string `help:"Filter by page URL"`
	Limit int    `default:"20" help:"Maximum number of captures to list"`
}

// CapturesShowCmd is the "captures show" subcommand.
type CapturesShowCmd struct {
	ID       string `arg:"" help:"Capture ID"`
	Snapshot bool   `help:"Print the stored DOM snapshot instead of the content"`
}

// CapturesDeleteCmd is the "captures delete" subcommand.
type CapturesDeleteCmd struct {
	ID string `arg:"" help:"Capture ID"`
}
