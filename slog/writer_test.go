package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/rknoche6/fast-browser-use/mock"
	bslog "github.com/rknoche6/fast-browser-use/slog"
)

func TestLoggingWriter_SaveCapture(t *testing.T) {
	t.Parallel()

	t.Run("logs save with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CaptureWriter{
			SaveCaptureFn: func(ctx context.Context, capture *browseruse.Capture) error {
				return nil
			},
		}

		writer := bslog.NewLoggingWriter(inner, logger)
		err := writer.SaveCapture(context.Background(), &browseruse.Capture{
			URL:     "https://example.com/docs",
			Content: "# Docs",
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "save capture")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "bytes=6")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CaptureWriter{
			SaveCaptureFn: func(ctx context.Context, capture *browseruse.Capture) error {
				return errors.New("disk full")
			},
		}

		writer := bslog.NewLoggingWriter(inner, logger)
		err := writer.SaveCapture(context.Background(), &browseruse.Capture{URL: "https://example.com"})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}

func TestLoggingRenderer_RenderContent(t *testing.T) {
	t.Parallel()

	t.Run("logs render with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentRenderer{
			RenderContentFn: func(ctx context.Context, html, url string) (*browseruse.ContentExtractionResult, error) {
				return &browseruse.ContentExtractionResult{Title: "t", Content: "# Docs", URL: url}, nil
			},
		}

		renderer := bslog.NewLoggingRenderer(inner, logger)
		result, err := renderer.RenderContent(context.Background(), "<h1>Docs</h1>", "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "# Docs", result.Content)
		output := buf.String()
		assert.Contains(t, output, "render content")
		assert.Contains(t, output, "bytes=6")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentRenderer{
			RenderContentFn: func(ctx context.Context, html, url string) (*browseruse.ContentExtractionResult, error) {
				return nil, browseruse.Errorf(browseruse.ENODOCUMENT, "document is empty")
			},
		}

		renderer := bslog.NewLoggingRenderer(inner, logger)
		_, err := renderer.RenderContent(context.Background(), "", "https://example.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "document is empty")
	})
}
