package browseruse

import (
	"context"
	"time"
)

// Capture represents one captured page: the readable-content rendering
// plus an optional serialized DOM snapshot.
type Capture struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Snapshot    string    `json:"snapshot,omitempty"`
	CapturedAt  time.Time `json:"capturedAt"`
}

// Validate returns an error if the capture contains invalid fields.
func (c *Capture) Validate() error {
	if c.URL == "" {
		return Errorf(EINVALID, "capture URL required")
	}
	return nil
}

// CaptureWriter writes captures to storage.
type CaptureWriter interface {
	SaveCapture(ctx context.Context, capture *Capture) error
}

// CaptureService represents a service for managing stored captures.
type CaptureService interface {
	// SaveCapture persists a new capture.
	SaveCapture(ctx context.Context, capture *Capture) error

	// FindCaptureByID retrieves a capture by ID.
	// Returns ENOTFOUND if the capture does not exist.
	FindCaptureByID(ctx context.Context, id string) (*Capture, error)

	// FindCaptures retrieves captures matching the filter.
	FindCaptures(ctx context.Context, filter CaptureFilter) ([]*Capture, error)

	// DeleteCapture permanently removes a capture.
	// Returns ENOTFOUND if the capture does not exist.
	DeleteCapture(ctx context.Context, id string) error
}

// CaptureFilter represents a filter for FindCaptures.
type CaptureFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// URLSource discovers page URLs from a site.
// Implementations hide the complexity of sitemap vs recursive discovery.
type URLSource interface {
	Discover(ctx context.Context, sourceURL string) ([]string, error)
}

// DomainLimiter paces outbound requests per host.
type DomainLimiter interface {
	// Wait blocks until the host's rate limit admits another request
	// or the context is canceled.
	Wait(ctx context.Context, host string) error
}
