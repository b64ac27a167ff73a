package slog

import (
	"context"
	"log/slog"
	"time"

	browseruse "github.com/rknoche6/fast-browser-use"
)

// Ensure LoggingWriter implements browseruse.CaptureWriter.
var _ browseruse.CaptureWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a CaptureWriter with debug logging.
type LoggingWriter struct {
	next   browseruse.CaptureWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next browseruse.CaptureWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// SaveCapture delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) SaveCapture(ctx context.Context, capture *browseruse.Capture) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("save capture",
			"url", capture.URL,
			"bytes", len(capture.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.SaveCapture(ctx, capture)
}
