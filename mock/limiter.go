package mock

import (
	"context"

	browseruse "github.com/rknoche6/fast-browser-use"
)

var _ browseruse.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of browseruse.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, host string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, host)
}
