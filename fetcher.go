package browseruse

import "context"

// Fetcher retrieves a rendered page from a URL.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the page to render, and
	// returns the final URL, title, and serialized HTML.
	// The context controls timeout and cancellation.
	// Title may be empty when the transport cannot know it.
	Fetch(ctx context.Context, url string) (*RenderedPage, error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
