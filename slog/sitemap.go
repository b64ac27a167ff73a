// Package slog provides logging decorators for browseruse services.
package slog

import (
	"context"
	"log/slog"
	"time"

	browseruse "github.com/rknoche6/fast-browser-use"
)

// Ensure LoggingSource implements browseruse.URLSource.
var _ browseruse.URLSource = (*LoggingSource)(nil)

// LoggingSource wraps a URLSource with debug logging.
type LoggingSource struct {
	next   browseruse.URLSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next browseruse.URLSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Discover delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Discover(ctx context.Context, sourceURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("url discovery",
			"url", sourceURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx, sourceURL)
}
