package rod

import (
	"context"
	"log/slog"
	"time"

	browseruse "github.com/rknoche6/fast-browser-use"
)

// Ensure LoggingFetcher implements browseruse.Fetcher.
var _ browseruse.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   browseruse.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next browseruse.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *browseruse.RenderedPage, err error) {
	defer func(begin time.Time) {
		bytes := 0
		if page != nil {
			bytes = len(page.HTML)
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
