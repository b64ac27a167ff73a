// Package http provides an HTTP-based implementation of browseruse.Fetcher
// for fetching content from static sites that don't require JavaScript
// rendering, plus sitemap-based URL discovery.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	browseruse "github.com/rknoche6/fast-browser-use"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements browseruse.Fetcher at compile time.
var _ browseruse.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages from URLs using plain HTTP requests. Unlike
// rod.Fetcher, this does not execute JavaScript and is suitable for static
// sites only. The page title is left empty; the transport does not know it.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page from the given URL. The returned URL reflects
// redirects.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*browseruse.RenderedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &browseruse.RenderedPage{
		URL:  resp.Request.URL.String(),
		HTML: string(body),
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
