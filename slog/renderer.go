package slog

import (
	"context"
	"log/slog"
	"time"

	browseruse "github.com/rknoche6/fast-browser-use"
)

// Ensure LoggingRenderer implements browseruse.ContentRenderer.
var _ browseruse.ContentRenderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a ContentRenderer with debug logging.
type LoggingRenderer struct {
	next   browseruse.ContentRenderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next browseruse.ContentRenderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// RenderContent delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) RenderContent(ctx context.Context, html, url string) (result *browseruse.ContentExtractionResult, err error) {
	defer func(begin time.Time) {
		bytes := 0
		if result != nil {
			bytes = len(result.Content)
		}
		r.logger.Info("render content",
			"url", url,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderContent(ctx, html, url)
}
