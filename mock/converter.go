package mock

import (
	"context"

	browseruse "github.com/rknoche6/fast-browser-use"
)

var _ browseruse.Converter = (*Converter)(nil)

// Converter is a mock implementation of browseruse.Converter.
type Converter struct {
	ConvertFn func(ctx context.Context, html string) (string, error)
}

func (c *Converter) Convert(ctx context.Context, html string) (string, error) {
	return c.ConvertFn(ctx, html)
}
