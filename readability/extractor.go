// Package readability extracts main content from HTML using the go-shiori
// readability engine.
package readability

import (
	"context"
	"strings"

	"github.com/go-shiori/go-readability"
	browseruse "github.com/rknoche6/fast-browser-use"
)

// Ensure Extractor implements browseruse.Extractor at compile time.
var _ browseruse.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(_ context.Context, rawHTML, _ string) (*browseruse.ExtractResult, error) {
	if rawHTML == "" {
		return nil, browseruse.Errorf(browseruse.ENODOCUMENT, "no accessible document")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &browseruse.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
