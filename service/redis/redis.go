package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/auctionhouse/base/ctx"
)

// Forever marks a key without an expiry.
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist. It aliases redigo's
	// nil reply so errors bubbled up from the driver compare equal.
	ErrNotFound = redis.ErrNil

	// ErrNoTTL is returned by TTL when the key exists without an expiry.
	ErrNoTTL = errors.New("key has no ttl")

	// ErrNoPool is returned when no pool is configured.
	ErrNoPool = errors.New("no redis pool")
)

// Service is the redis command surface the cache providers consume.
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	TTL(context ctx.Ctx, key string) (int, error)
}
