package ens

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/database/redisclient"
	"github.com/x-xyz/auctionhouse/base/metrics"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/service/redis"
)

type ensSuite struct {
	suite.Suite

	im *impl
}

func (s *ensSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip()
	}

	redisCacheName := "cache"
	redisCacheURI := "localhost:6379"
	redisCachePwd := ""
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: 20,
		Retry:          true,
	})

	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	im, err := New("https://rpc.ankr.com/eth", redisCache)
	s.Require().NoError(err)
	s.im = im.(*impl)
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) TestReverseResolve() {
	name := "vitalik.eth"
	address := domain.Address("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")

	res, err := s.im.ReverseResolve(ctx.Background(), address)
	if s.NoError(err) {
		s.Equal(name, res)
	}
}

func (s *ensSuite) TestReverseResolveUnregistered() {
	// plain eoa with no reverse record
	address := domain.Address("0x94EaD797046c7b654cab82C1c27ad223b6501f1f")

	res, err := s.im.ReverseResolve(ctx.Background(), address)
	if s.NoError(err) {
		s.Equal("", res)
	}
}
