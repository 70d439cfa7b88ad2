package ens

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/base/ptr"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/keys"
	"github.com/x-xyz/auctionhouse/service/cache"
	compoundcache "github.com/x-xyz/auctionhouse/service/cache/compoundCache"
	"github.com/x-xyz/auctionhouse/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/auctionhouse/service/cache/provider/redis"
	"github.com/x-xyz/auctionhouse/service/redis"
)

const ensPfx = "ensPfx"

type impl struct {
	client *ethclient.Client
	cache  cache.Service
}

// New dials the mainnet rpc used for reverse lookups. Names only
// decorate notifications, so cached entries may go a day stale.
func New(rpc string, redis redis.Service) (ENS, error) {
	client, err := ethclient.Dial(rpc)
	if err != nil {
		return nil, err
	}

	local := cache.New(cache.ServiceConfig{
		Ttl:   5 * time.Minute,
		Pfx:   ensPfx,
		Cache: primitive.NewPrimitive("ens", 512),
	})
	shared := cache.New(cache.ServiceConfig{
		Ttl:   24 * time.Hour,
		Pfx:   ensPfx,
		Cache: redisCache.NewRedis(redis),
	})

	return &impl{
		client: client,
		cache:  compoundcache.NewCompoundCache([]cache.Service{local, shared}),
	}, nil
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	name := ""
	key := keys.RedisKey("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &name, func() (interface{}, error) {
		return im.lookupName(ctx, address)
	})
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "address": address}).Error("ens reverse resolve failed")
		return "", err
	}
	return name, nil
}

// lookupName hits the resolver contract. Addresses without a reverse
// record cache as an empty name rather than an error.
func (im *impl) lookupName(ctx ctx.Ctx, address domain.Address) (interface{}, error) {
	name, err := goens.ReverseResolve(im.client, common.HexToAddress(string(address)))
	if err != nil {
		// goens exports no sentinel for a missing reverse record
		if err.Error() == "not a resolver" {
			return ptr.String(""), nil
		}
		ctx.WithFields(log.Fields{"err": err}).Error("failed to goens.ReverseResolve")
		return nil, err
	}
	return &name, nil
}
