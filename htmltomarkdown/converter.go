// Package htmltomarkdown converts HTML to Markdown via the
// html-to-markdown commonmark engine.
package htmltomarkdown

import (
	"context"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	browseruse "github.com/rknoche6/fast-browser-use"
)

// Ensure Converter implements browseruse.Converter at compile time.
var _ browseruse.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown. Unlike the
// native renderer it preserves inline markup nested inside block elements,
// so its output follows commonmark conventions rather than the flattening
// rules of the native engine.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(_ context.Context, html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", browseruse.Errorf(browseruse.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
