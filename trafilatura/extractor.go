// Package trafilatura extracts main content from HTML using the
// go-trafilatura boilerplate-removal engine.
package trafilatura

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	browseruse "github.com/rknoche6/fast-browser-use"
	"golang.org/x/net/html"
)

// Ensure Extractor implements browseruse.Extractor at compile time.
var _ browseruse.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The page URL,
// when valid, improves trafilatura's metadata extraction.
func (e *Extractor) Extract(_ context.Context, rawHTML, pageURL string) (*browseruse.ExtractResult, error) {
	if rawHTML == "" {
		return nil, browseruse.Errorf(browseruse.ENODOCUMENT, "no accessible document")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &browseruse.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
