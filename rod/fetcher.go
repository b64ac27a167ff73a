// Package rod retrieves rendered pages and live page metadata through
// Chrome browser automation.
package rod

import (
	"context"
	"time"

	"github.com/go-rod/rod/lib/proto"
	browseruse "github.com/rknoche6/fast-browser-use"
)

// Ensure Fetcher implements browseruse.Fetcher at compile time.
var _ browseruse.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered pages from URLs using Chrome browser
// automation. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager     *BrowserManager
	timeout     time.Duration
	ownsManager bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds each Fetch call. Zero means no per-fetch bound
// beyond the caller's context.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithManager uses an existing browser manager instead of launching one.
// The manager's lifecycle remains the caller's responsibility.
func WithManager(m *BrowserManager) Option {
	return func(f *Fetcher) {
		f.manager = m
	}
}

// NewFetcher creates a Fetcher, launching a headless Chrome browser unless
// a manager is supplied. Close must be called when the Fetcher is no longer
// needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}
	if f.manager == nil {
		m, err := NewBrowserManager()
		if err != nil {
			return nil, err
		}
		f.manager = m
		f.ownsManager = true
	}
	return f, nil
}

// Fetch navigates to the URL, waits for the page to load, and returns the
// final URL, title, and rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*browseruse.RenderedPage, error) {
	session, err := f.OpenSession(ctx, url)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	return session.Page()
}

// OpenSession navigates to the URL and keeps the page open so the caller
// can resolve live styles and geometry against it. The session must be
// closed when no longer needed.
func (f *Fetcher) OpenSession(ctx context.Context, url string) (*PageSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		// The session outlives this call; tie the timeout to page close.
		return f.openSession(ctx, url, cancel)
	}
	return f.openSession(ctx, url, nil)
}

func (f *Fetcher) openSession(ctx context.Context, url string, cancel context.CancelFunc) (*PageSession, error) {
	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		if cancel != nil {
			cancel()
		}
		return nil, err
	}
	page = page.Context(ctx)

	session := &PageSession{page: page, cancel: cancel}
	if err := page.Navigate(url); err != nil {
		session.Close()
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		session.Close()
		return nil, err
	}

	f.manager.IncrementPageCount()
	return session, nil
}

// LauncherPID returns the process ID of the underlying browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close releases browser resources, unless the browser manager was supplied
// by the caller.
func (f *Fetcher) Close() error {
	if !f.ownsManager {
		return nil
	}
	return f.manager.Close()
}
