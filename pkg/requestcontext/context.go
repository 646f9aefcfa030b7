// Package requestcontext provides context accessors for request-scoped values.
//
// The analysis core is pure computation, but two request-scoped values still
// flow through it: a request ID for log correlation, and the evaluation time
// used by time-eligibility arithmetic. Keeping them on the context lets
// callers (and tests) pin them without threading extra parameters through
// every layer.
//
// Usage in services (read values):
//
//	requestID := requestcontext.RequestID(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	requestIDKey struct{}
	timeKey      struct{}
)

// WithRequestID stores a request ID for log correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID, or "" when none was set.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithTime pins the evaluation time. Eligibility dates are computed relative
// to this instant, so a whole analysis run observes one consistent "now".
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, timeKey{}, t)
}

// Now returns the pinned evaluation time, falling back to time.Now.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(timeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}
