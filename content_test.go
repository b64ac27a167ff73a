package browseruse_test

import (
	"context"
	"testing"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/rknoche6/fast-browser-use/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractConvert_RenderContent(t *testing.T) {
	t.Parallel()

	t.Run("composes extractor and converter", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(_ context.Context, html, url string) (*browseruse.ExtractResult, error) {
				assert.Equal(t, "<html><body><p>hi</p></body></html>", html)
				assert.Equal(t, "https://example.com", url)
				return &browseruse.ExtractResult{Title: "Example", ContentHTML: "<p>hi</p>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(_ context.Context, html string) (string, error) {
				assert.Equal(t, "<p>hi</p>", html)
				return "hi", nil
			},
		}
		ec := &browseruse.ExtractConvert{Extractor: extractor, Converter: converter}

		result, err := ec.RenderContent(context.Background(), "<html><body><p>hi</p></body></html>", "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, "Example", result.Title)
		assert.Equal(t, "hi", result.Content)
		assert.Equal(t, "https://example.com", result.URL)
	})

	t.Run("propagates extractor errors", func(t *testing.T) {
		t.Parallel()

		ec := &browseruse.ExtractConvert{
			Extractor: &mock.Extractor{
				ExtractFn: func(context.Context, string, string) (*browseruse.ExtractResult, error) {
					return nil, browseruse.Errorf(browseruse.ENODOCUMENT, "no accessible document")
				},
			},
		}

		_, err := ec.RenderContent(context.Background(), "", "")
		assert.Equal(t, browseruse.ENODOCUMENT, browseruse.ErrorCode(err))
	})

	t.Run("propagates converter errors", func(t *testing.T) {
		t.Parallel()

		ec := &browseruse.ExtractConvert{
			Extractor: &mock.Extractor{
				ExtractFn: func(context.Context, string, string) (*browseruse.ExtractResult, error) {
					return &browseruse.ExtractResult{ContentHTML: "<p>hi</p>"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(context.Context, string) (string, error) {
					return "", browseruse.Errorf(browseruse.EINTERNAL, "conversion failed")
				},
			},
		}

		_, err := ec.RenderContent(context.Background(), "<p>hi</p>", "")
		assert.Equal(t, browseruse.EINTERNAL, browseruse.ErrorCode(err))
	})
}
