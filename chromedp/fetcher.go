// Package chromedp retrieves rendered pages through the Chrome DevTools
// Protocol via chromedp, as an alternative to the rod-based fetcher for
// environments where a DevTools endpoint is already provisioned.
package chromedp

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/chromedp"
	browseruse "github.com/rknoche6/fast-browser-use"
)

// DefaultFetchTimeout bounds a single page load.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements browseruse.Fetcher at compile time.
var _ browseruse.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered pages from URLs using chromedp. Each Fetch
// runs in its own browser context off a shared exec allocator.
type Fetcher struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	timeout     time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds each Fetch call. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a Fetcher with a headless Chrome exec allocator.
// Close must be called when the Fetcher is no longer needed.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	f.allocCtx, f.allocCancel = chromedp.NewExecAllocator(context.Background(), allocOpts...)
	return f
}

// Fetch navigates to the URL and returns the final URL, title, and rendered
// HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*browseruse.RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	taskCtx, cancel := chromedp.NewContext(f.allocCtx)
	defer cancel()
	taskCtx, cancel = context.WithTimeout(taskCtx, f.timeout)
	defer cancel()

	// chromedp contexts descend from the allocator, not the caller, so
	// propagate the caller's cancellation by hand.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var title, location, html string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Title(&title),
		chromedp.Location(&location),
		chromedp.ActionFunc(func(ctx context.Context) error {
			root, err := dom.GetDocument().Do(ctx)
			if err != nil {
				return err
			}
			html, err = dom.GetOuterHTML().WithNodeID(root.NodeID).Do(ctx)
			return err
		}),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	return &browseruse.RenderedPage{
		URL:   location,
		Title: title,
		HTML:  html,
	}, nil
}

// Close releases the allocator and any browsers it spawned.
func (f *Fetcher) Close() error {
	f.allocCancel()
	return nil
}
