package mock

import (
	"context"

	browseruse "github.com/rknoche6/fast-browser-use"
)

var _ browseruse.ContentRenderer = (*ContentRenderer)(nil)

// ContentRenderer is a mock implementation of browseruse.ContentRenderer.
type ContentRenderer struct {
	RenderContentFn func(ctx context.Context, html, url string) (*browseruse.ContentExtractionResult, error)
}

func (r *ContentRenderer) RenderContent(ctx context.Context, html, url string) (*browseruse.ContentExtractionResult, error) {
	return r.RenderContentFn(ctx, html, url)
}
