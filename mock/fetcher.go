package mock

import (
	"context"

	browseruse "github.com/rknoche6/fast-browser-use"
)

var _ browseruse.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of browseruse.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*browseruse.RenderedPage, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*browseruse.RenderedPage, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
