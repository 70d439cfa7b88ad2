package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponentialGrowth(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)

	req.Equal(time.Millisecond, b.next)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(2*time.Millisecond, b.next)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(4*time.Millisecond, b.next)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(4*time.Millisecond, b.next)

	b.Reset()
	req.Equal(time.Millisecond, b.next)
}

func TestBackoffStopsWhenCancelled(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Hour, 0)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	req.ErrorIs(b.Backoff(ctx), context.Canceled)
	req.Less(int64(time.Since(start)), int64(time.Second))
}
