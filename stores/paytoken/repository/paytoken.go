package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/database/mongoclient"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/service/cache"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
	"github.com/x-xyz/auctionhouse/service/cache/provider/compound"
	"github.com/x-xyz/auctionhouse/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/auctionhouse/service/cache/provider/redis"
	"github.com/x-xyz/auctionhouse/service/query"
	"github.com/x-xyz/auctionhouse/service/redis"
)

type payTokenMongoRepo struct {
	q          query.Mongo
	tokenCache cache.Service
}

// NewPayTokenRepo creates the currency registry repo. Registered tokens
// change rarely, so lookups are read-through cached and writes drop the
// cached entry. redis may be nil, the in-process layer still applies.
func NewPayTokenRepo(q query.Mongo, redis redis.Service) domain.PayTokenRepo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive("paytoken", 16),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &payTokenMongoRepo{
		q: q,
		tokenCache: cache.New(cache.ServiceConfig{
			Ttl:   10 * time.Minute,
			Pfx:   "paytoken",
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (r *payTokenMongoRepo) FindOne(ctx bCtx.Ctx, chainId domain.ChainId, tokenAddress domain.Address) (*domain.PayToken, error) {
	payToken := &domain.PayToken{}

	err := r.tokenCache.GetByFunc(ctx, tokenKey(chainId, tokenAddress), payToken, func() (interface{}, error) {
		return r.findOne(ctx, chainId, tokenAddress)
	})
	if err == domain.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"address": tokenAddress,
			"err":     err,
		}).Error("tokenCache.GetByFunc failed")
		return nil, err
	}

	return payToken, nil
}

func (r *payTokenMongoRepo) findOne(ctx bCtx.Ctx, chainId domain.ChainId, tokenAddress domain.Address) (*domain.PayToken, error) {
	payToken := &domain.PayToken{}
	qry := bson.M{"chainId": chainId, "address": tokenAddress.ToLower()}
	err := r.q.FindOne(ctx, domain.TablePayTokens, qry, payToken)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"address": tokenAddress,
			"err":     err,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return payToken, nil
}

func (r *payTokenMongoRepo) Upsert(ctx bCtx.Ctx, payToken *domain.PayToken) error {
	payToken.Address = payToken.Address.ToLower()

	selector, err := mongoclient.MakeBsonM(payToken.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TablePayTokens, selector, payToken); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  payToken.ToId(),
		}).Error("q.Upsert failed")
		return err
	}

	if err := r.tokenCache.Del(ctx, tokenKey(payToken.ChainId, payToken.Address)); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  payToken.ToId(),
		}).Warn("tokenCache.Del failed")
	}
	return nil
}

func tokenKey(chainId domain.ChainId, tokenAddress domain.Address) string {
	return fmt.Sprintf("%d:%s", chainId, tokenAddress.ToLowerStr())
}
