package capture_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/rknoche6/fast-browser-use/capture"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	noDelays := []time.Duration{0, 0, 0}

	t.Run("returns page on first success", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(_ context.Context, url string) (*browseruse.RenderedPage, error) {
			attempts++
			return &browseruse.RenderedPage{URL: url, HTML: "<p>ok</p>"}, nil
		}

		page, err := capture.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<p>ok</p>", page.HTML)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries after transient failures", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(_ context.Context, url string) (*browseruse.RenderedPage, error) {
			attempts++
			if attempts < 3 {
				return nil, errors.New("timeout")
			}
			return &browseruse.RenderedPage{URL: url, HTML: "<p>ok</p>"}, nil
		}

		page, err := capture.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<p>ok</p>", page.HTML)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns last error when all attempts fail", func(t *testing.T) {
		t.Parallel()

		var attempts int
		fetch := func(_ context.Context, _ string) (*browseruse.RenderedPage, error) {
			attempts++
			return nil, errors.New("connection refused")
		}

		_, err := capture.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)

		require.Error(t, err)
		assert.Equal(t, "connection refused", err.Error())
		assert.Equal(t, 4, attempts) // 1 initial + 3 retries
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (*browseruse.RenderedPage, error) {
			cancel()
			return nil, errors.New("timeout")
		}

		_, err := capture.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, []time.Duration{time.Second})

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("logs retry attempts", func(t *testing.T) {
		t.Parallel()

		var logged int
		logger := func(_ string, _ ...any) { logged++ }
		fetch := func(_ context.Context, _ string) (*browseruse.RenderedPage, error) {
			return nil, errors.New("timeout")
		}

		_, err := capture.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, logger, noDelays)

		require.Error(t, err)
		assert.Equal(t, 3, logged)
	})
}
