package readability_test

import (
	"context"
	"testing"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/rknoche6/fast-browser-use/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements browseruse.Extractor at compile time.
var _ browseruse.Extractor = (*readability.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article content and title", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Readable Page</title></head>
<body>
<nav>site navigation links</nav>
<article>
<h1>The Article</h1>
<p>A long enough paragraph of body text that the readability scorer will
treat as the primary content of this page rather than boilerplate.</p>
<p>Another paragraph continuing the main body of the article with more
sentences to score.</p>
</article>
</body>
</html>`

		ext := readability.NewExtractor()
		result, err := ext.Extract(context.Background(), html, "")

		require.NoError(t, err)
		assert.Equal(t, "Readable Page", result.Title)
		assert.Contains(t, result.ContentHTML, "primary content")
	})

	t.Run("empty input reports no document", func(t *testing.T) {
		t.Parallel()

		ext := readability.NewExtractor()
		_, err := ext.Extract(context.Background(), "", "")

		assert.Equal(t, browseruse.ENODOCUMENT, browseruse.ErrorCode(err))
	})
}
