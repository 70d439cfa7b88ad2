package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
	"github.com/x-xyz/auctionhouse/service/redis"
	mockRedis "github.com/x-xyz/auctionhouse/service/redis/mocks"
)

var mockCtx = ctx.Background()

type redisProviderSuite struct {
	suite.Suite
	im    *impl
	redis *mockRedis.Service
}

func TestRedisProviderSuite(t *testing.T) {
	suite.Run(t, new(redisProviderSuite))
}

func (ts *redisProviderSuite) SetupTest() {
	ts.redis = &mockRedis.Service{}
	ts.im = NewRedis(ts.redis).(*impl)
}

func (ts *redisProviderSuite) TearDownTest() {
	ts.redis.AssertExpectations(ts.T())
}

func (ts *redisProviderSuite) TestGetMissMapsToProviderNotFound() {
	ts.redis.On("Get", mockCtx, "auction:1").Return(nil, redis.ErrNotFound).Once()

	val, _, err := ts.im.Get(mockCtx, "auction:1")
	ts.Nil(val)
	ts.ErrorIs(err, provider.ErrNotFound)
}

func (ts *redisProviderSuite) TestGetReportsRemainingTtl() {
	payload := []byte(`{"auctionId":7}`)
	ts.redis.On("Get", mockCtx, "auction:7").Return(payload, nil).Once()
	ts.redis.On("TTL", mockCtx, "auction:7").Return(42, nil).Once()

	val, ttl, err := ts.im.Get(mockCtx, "auction:7")
	ts.NoError(err)
	ts.Equal(payload, val)
	ts.Equal(42*time.Second, ttl)
}

func (ts *redisProviderSuite) TestGetPropagatesBackendError() {
	boom := errors.New("connection reset")
	ts.redis.On("Get", mockCtx, "auction:7").Return(nil, boom).Once()

	_, _, err := ts.im.Get(mockCtx, "auction:7")
	ts.ErrorIs(err, boom)
}

func (ts *redisProviderSuite) TestSet() {
	payload := []byte(`{"auctionId":7}`)
	ts.redis.On("Set", mockCtx, "auction:7", payload, time.Minute).Return(nil).Once()

	ts.NoError(ts.im.Set(mockCtx, "auction:7", payload, time.Minute))
}

func (ts *redisProviderSuite) TestDel() {
	ts.redis.On("Del", mockCtx, "auction:7").Return(1, nil).Once()

	ts.NoError(ts.im.Del(mockCtx, "auction:7"))
}
