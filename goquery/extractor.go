// Package goquery selects the main content region of a page with CSS
// queries, mirroring the renderer's content-root policy.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	browseruse "github.com/rknoche6/fast-browser-use"
)

// Ensure Extractor implements browseruse.Extractor at compile time.
var _ browseruse.Extractor = (*Extractor)(nil)

// contentSelectors are tried in order; the first match becomes the content
// region.
var contentSelectors = []string{
	"article",
	"main",
	`[role="main"]`,
	"body",
}

// Extractor picks the main content region by selector policy. Unlike the
// readability and trafilatura extractors it does no boilerplate scoring,
// which makes it predictable on documentation-style pages where the markup
// already marks the content region.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the outer HTML of the first matching content region and
// the document title.
func (e *Extractor) Extract(_ context.Context, rawHTML, _ string) (*browseruse.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, browseruse.Errorf(browseruse.ENODOCUMENT, "no accessible document")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, browseruse.Errorf(browseruse.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		contentHTML, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, err
		}
		return &browseruse.ExtractResult{
			Title:       title,
			ContentHTML: contentHTML,
		}, nil
	}

	return nil, browseruse.Errorf(browseruse.ENODOCUMENT, "document has no content region")
}
