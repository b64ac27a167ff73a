// Package capture provides site capture orchestration.
// It coordinates URL discovery, page fetching, content rendering, and
// storage of captured pages.
package capture

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/rknoche6/fast-browser-use/bloom"
)

// Frontier configuration for URL deduplication.
const (
	// expectedURLs is the expected number of URLs for Bloom filter sizing.
	expectedURLs = 10000
	// falsePositiveRate is the acceptable false positive rate for deduplication.
	falsePositiveRate = 0.01
)

// Capturer orchestrates the capture of whole sites.
type Capturer struct {
	Source      browseruse.URLSource
	Fetcher     browseruse.Fetcher
	Renderer    browseruse.ContentRenderer
	Store       browseruse.CaptureWriter
	RateLimiter browseruse.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a capture operation.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
}

// ProgressEvent reports progress during a capture operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting capture progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	title    string
	content  string
	hash     string
	err      error
}

// CaptureSite discovers the pages of a site and saves each as a capture.
// The progress callback, if provided, receives events as capturing proceeds.
func (c *Capturer) CaptureSite(ctx context.Context, sourceURL string, progress ProgressFunc) (*Result, error) {
	discovered, err := c.Source.Discover(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("url discovery: %w", err)
	}

	// Deduplicate while preserving discovery order.
	seen := bloom.NewURLSet(expectedURLs, falsePositiveRate)
	urls := make([]string, 0, len(discovered))
	for _, u := range discovered {
		if seen.Seen(u) {
			continue
		}
		seen.Add(u)
		urls = append(urls, u)
	}

	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan pageResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				result := c.processURL(gctx, i, u)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order.
	results := make([]pageResult, len(urls))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failedCount++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       result.url,
					Error:     result.err,
				})
			}
		} else {
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       result.url,
				})
			}
		}
	}

	// Save captures and accumulate stats.
	var savedCount int
	var totalBytes int

	for _, result := range results {
		if result.err != nil {
			continue
		}

		capture := &browseruse.Capture{
			ID:          uuid.NewString(),
			URL:         result.url,
			Title:       result.title,
			Content:     result.content,
			ContentHash: result.hash,
			CapturedAt:  time.Now().UTC(),
		}

		if err := c.Store.SaveCapture(ctx, capture); err != nil {
			failedCount++
			continue
		}

		savedCount++
		totalBytes += len(result.content)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Saved:  savedCount,
		Failed: failedCount,
		Bytes:  totalBytes,
	}, nil
}

// processURL fetches and renders a single URL.
func (c *Capturer) processURL(ctx context.Context, position int, rawURL string) pageResult {
	result := pageResult{
		position: position,
		url:      rawURL,
	}

	if c.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			result.err = err
			return result
		}
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	page, err := FetchWithRetryDelays(ctx, rawURL, c.Fetcher.Fetch, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	rendered, err := c.Renderer.RenderContent(ctx, page.HTML, page.URL)
	if err != nil {
		result.err = err
		return result
	}

	result.title = rendered.Title
	if result.title == "" {
		result.title = page.Title
	}
	result.content = rendered.Content
	result.hash = ComputeHash(rendered.Content)

	return result
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
