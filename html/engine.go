package html

import (
	"context"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/rknoche6/fast-browser-use/extract"
)

var _ browseruse.ContentRenderer = (*Engine)(nil)

// Engine renders page content with the native tree pipeline: parse the
// markup, pick the content root, and linearize it to markdown.
type Engine struct{}

// NewEngine returns a native content rendering engine.
func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) RenderContent(_ context.Context, html, url string) (*browseruse.ContentExtractionResult, error) {
	tree, err := Parse(html)
	if err != nil {
		return nil, err
	}
	var r extract.Renderer
	title, content, err := r.Render(tree)
	if err != nil {
		return nil, err
	}
	return &browseruse.ContentExtractionResult{
		Title:   title,
		Content: content,
		URL:     url,
	}, nil
}
