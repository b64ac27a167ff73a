package mock

import (
	"context"

	browseruse "github.com/rknoche6/fast-browser-use"
)

var _ browseruse.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of browseruse.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, html, url string) (*browseruse.ExtractResult, error)
}

func (e *Extractor) Extract(ctx context.Context, html, url string) (*browseruse.ExtractResult, error) {
	return e.ExtractFn(ctx, html, url)
}
