package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/database/mongoclient"
	"github.com/x-xyz/auctionhouse/domain/healthcheck"
	"github.com/x-xyz/auctionhouse/domain/keys"
	"github.com/x-xyz/auctionhouse/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mongo      *mongoclient.Client
	redisCache redis.Service
}

// New builds the probe repo over the stores the api depends on.
func New(mongo *mongoclient.Client, redisCache redis.Service) healthcheck.Repo {
	return &impl{
		mongo:      mongo,
		redisCache: redisCache,
	}
}

// Ping round-trips mongo and the redis cache. Either one failing
// marks the pod unhealthy.
func (im *impl) Ping(context ctx.Ctx) error {
	c, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := im.mongo.Ping(c, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}

	if err := im.redisCache.Set(c, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}
