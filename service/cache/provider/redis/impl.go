package redis

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
	"github.com/x-xyz/auctionhouse/service/redis"
)

type impl struct {
	redis redis.Service
}

// NewRedis adapts redis.Service to the provider interface. The remaining
// ttl reported by Get comes straight from the redis TTL command.
func NewRedis(redis redis.Service) provider.Provider {
	return &impl{redis: redis}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := im.redis.Get(c, key)
	if err == redis.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	}
	if err != nil {
		return nil, 0, im.logErr(c, key, "redis.Get failed", err)
	}
	ttl, err := im.redis.TTL(c, key)
	if err != nil {
		return nil, 0, im.logErr(c, key, "redis.TTL failed", err)
	}
	return val, time.Duration(ttl) * time.Second, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.redis.Set(c, key, value, ttl); err != nil {
		return im.logErr(c, key, "redis.Set failed", err)
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if _, err := im.redis.Del(c, key); err != nil {
		return im.logErr(c, key, "redis.Del failed", err)
	}
	return nil
}

func (im *impl) logErr(c ctx.Ctx, key, msg string, err error) error {
	c.WithField("err", err).WithField("key", key).Error(msg)
	return err
}
