package mock

import (
	"context"

	browseruse "github.com/rknoche6/fast-browser-use"
)

var (
	_ browseruse.CaptureWriter  = (*CaptureWriter)(nil)
	_ browseruse.CaptureService = (*CaptureService)(nil)
)

// CaptureWriter is a mock implementation of browseruse.CaptureWriter.
type CaptureWriter struct {
	SaveCaptureFn func(ctx context.Context, capture *browseruse.Capture) error
}

func (w *CaptureWriter) SaveCapture(ctx context.Context, capture *browseruse.Capture) error {
	if w.SaveCaptureFn == nil {
		return nil
	}
	return w.SaveCaptureFn(ctx, capture)
}

// CaptureService is a mock implementation of browseruse.CaptureService.
type CaptureService struct {
	SaveCaptureFn     func(ctx context.Context, capture *browseruse.Capture) error
	FindCaptureByIDFn func(ctx context.Context, id string) (*browseruse.Capture, error)
	FindCapturesFn    func(ctx context.Context, filter browseruse.CaptureFilter) ([]*browseruse.Capture, error)
	DeleteCaptureFn   func(ctx context.Context, id string) error
}

func (s *CaptureService) SaveCapture(ctx context.Context, capture *browseruse.Capture) error {
	return s.SaveCaptureFn(ctx, capture)
}

func (s *CaptureService) FindCaptureByID(ctx context.Context, id string) (*browseruse.Capture, error) {
	return s.FindCaptureByIDFn(ctx, id)
}

func (s *CaptureService) FindCaptures(ctx context.Context, filter browseruse.CaptureFilter) ([]*browseruse.Capture, error) {
	return s.FindCapturesFn(ctx, filter)
}

func (s *CaptureService) DeleteCapture(ctx context.Context, id string) error {
	return s.DeleteCaptureFn(ctx, id)
}
