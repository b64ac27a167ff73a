package browseruse

import "context"

// RenderedPage is a page as a fetcher delivered it: the final URL after
// redirects, the document title if the transport knows it, and the
// serialized HTML.
type RenderedPage struct {
	URL   string
	Title string
	HTML  string
}

// ContentExtractionResult is the readable-content view of a page: the
// document title, the main content rendered as markdown, and the page URL.
type ContentExtractionResult struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// A ContentRenderer turns page HTML into a ContentExtractionResult.
type ContentRenderer interface {
	RenderContent(ctx context.Context, html, url string) (*ContentExtractionResult, error)
}

// ExtractConvert composes a content Extractor with a markdown Converter
// into a ContentRenderer. The extractor isolates the main content region
// and the converter renders it to markdown.
type ExtractConvert struct {
	Extractor Extractor
	Converter Converter
}

func (ec *ExtractConvert) RenderContent(ctx context.Context, html, url string) (*ContentExtractionResult, error) {
	res, err := ec.Extractor.Extract(ctx, html, url)
	if err != nil {
		return nil, err
	}
	md, err := ec.Converter.Convert(ctx, res.ContentHTML)
	if err != nil {
		return nil, err
	}
	return &ContentExtractionResult{
		Title:   res.Title,
		Content: md,
		URL:     url,
	}, nil
}
