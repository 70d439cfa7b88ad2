package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/database/redisclient"
	"github.com/x-xyz/auctionhouse/base/metrics"
	"github.com/x-xyz/auctionhouse/service/redis"
)

type cacheMiddlewareSuite struct {
	suite.Suite

	redis redis.Service
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) SetupSuite() {
	pool := redisclient.MustConnectRedis("localhost:6379", "", redisclient.RedisParam{
		PoolMultiplier: 20,
	})
	redisCache := redis.New("cache", metrics.New("cache"), &redis.Pools{Src: pool})

	SetupCache(redisCache)
	s.redis = redisCache
}

func (s *cacheMiddlewareSuite) serve(path, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())

	h := func(c echo.Context) error {
		return c.String(http.StatusOK, body)
	}
	s.NoError(CacheHttp(30 * time.Second)(h)(c))
	return rec
}

func (s *cacheMiddlewareSuite) TestSecondRequestServedFromCache() {
	path := "/auctions?chainId=1"

	rec := s.serve(path, "first")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("first", rec.Body.String())

	// same URL, different handler output, the cached body wins
	rec = s.serve(path, "second")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("first", rec.Body.String())

	// the entry landed in redis under the hashed URL
	key := generateKey(path)
	_, err := s.redis.Get(ctx.Background(), "httpCacheMiddleware:"+key)
	s.NoError(err)
}

func (s *cacheMiddlewareSuite) TestDistinctUrlsCachedSeparately() {
	recA := s.serve("/auction/1/11", "auction 11")
	recB := s.serve("/auction/1/12", "auction 12")
	s.Equal("auction 11", recA.Body.String())
	s.Equal("auction 12", recB.Body.String())
}
