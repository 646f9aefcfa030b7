package testutil

import (
	"context"
	"time"

	"recordexpunge/pkg/requestcontext"
)

// ContextWithTime returns a context whose evaluation clock is pinned to t,
// so date-based assertions do not race the wall clock.
func ContextWithTime(t time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), t)
}

// MustParseDate parses a YYYY-MM-DD date or panics. Test fixtures only.
func MustParseDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
