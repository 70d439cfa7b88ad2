// Package backoff paces retry loops. A Backoff sleeps for an
// exponentially growing duration capped at a limit, and is reset once
// a round of work finds something to do.
package backoff

import (
	"context"
	"time"
)

// Backoff sleeps between attempts. Not safe for concurrent use, each
// loop owns its own instance.
type Backoff struct {
	start time.Duration
	limit time.Duration
	next  time.Duration
}

// NewExponential doubles the wait on every attempt, starting at start
// and never exceeding limit. A limit of zero means uncapped.
func NewExponential(start, limit time.Duration) *Backoff {
	b := &Backoff{start: start, limit: limit}
	b.Reset()
	return b
}

// Reset puts the wait back to its starting value.
func (b *Backoff) Reset() {
	b.next = b.start
}

// Backoff sleeps for the current wait and grows it for the next call.
// It returns the context error when ctx ends first.
func (b *Backoff) Backoff(ctx context.Context) error {
	t := time.NewTimer(b.next)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}

	b.next *= 2
	if b.limit > 0 && b.next > b.limit {
		b.next = b.limit
	}
	return nil
}
