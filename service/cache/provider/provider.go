package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
)

var ErrNotFound = errors.New("Cache not found")

// Provider is a raw byte cache. Get also reports the remaining ttl so
// a compound cache can refill warmer layers without stretching expiry.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
