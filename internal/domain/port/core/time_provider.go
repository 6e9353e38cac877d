package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain. Injecting it keeps
// the dashboard's current-month window and entity timestamps deterministic
// in tests.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
