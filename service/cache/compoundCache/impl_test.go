package compoundcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/service/cache"
	"github.com/x-xyz/auctionhouse/service/cache/provider/primitive"
)

var mockCtx = ctx.Background()

type entry struct {
	Count int `json:"count"`
}

type compoundSuite struct {
	suite.Suite
	im    *impl
	front cache.Service
	back  cache.Service
}

func TestCompoundCache(t *testing.T) {
	suite.Run(t, new(compoundSuite))
}

func (s *compoundSuite) SetupTest() {
	s.front = cache.New(cache.ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "front",
		Cache: primitive.NewPrimitive("front", 64),
	})
	s.back = cache.New(cache.ServiceConfig{
		Ttl:   2 * time.Second,
		Pfx:   "back",
		Cache: primitive.NewPrimitive("back", 64),
	})
	s.im = NewCompoundCache([]cache.Service{s.front, s.back}).(*impl)
}

func (s *compoundSuite) TestGetWarmsFrontLayers() {
	c := &entry{}
	s.Equal(cache.ErrNotFound, s.im.Get(mockCtx, "auctions", c))

	// only the back layer holds the value
	s.NoError(s.back.Set(mockCtx, "auctions", entry{Count: 7}))
	s.NoError(s.im.Get(mockCtx, "auctions", c))
	s.Equal(7, c.Count)

	// the hit warmed the front layer
	c = &entry{}
	s.NoError(s.front.Get(mockCtx, "auctions", c))
	s.Equal(7, c.Count)
}

func (s *compoundSuite) TestSetWritesAllLayers() {
	s.NoError(s.im.Set(mockCtx, "auctions", entry{Count: 3}))

	c := &entry{}
	s.NoError(s.front.Get(mockCtx, "auctions", c))
	s.Equal(3, c.Count)

	c = &entry{}
	s.NoError(s.back.Get(mockCtx, "auctions", c))
	s.Equal(3, c.Count)
}

func (s *compoundSuite) TestDelRemovesAllLayers() {
	s.NoError(s.im.Set(mockCtx, "auctions", entry{Count: 3}))
	s.NoError(s.im.Del(mockCtx, "auctions"))

	c := &entry{}
	s.Equal(cache.ErrNotFound, s.front.Get(mockCtx, "auctions", c))
	s.Equal(cache.ErrNotFound, s.back.Get(mockCtx, "auctions", c))
}

func (s *compoundSuite) TestGetByFuncFillsEveryLayer() {
	calls := 0
	c := &entry{}
	s.NoError(s.im.GetByFunc(mockCtx, "auctions", c, func() (interface{}, error) {
		calls++
		return &entry{Count: 9}, nil
	}))
	s.Equal(9, c.Count)
	s.Equal(1, calls)

	c = &entry{}
	s.NoError(s.front.Get(mockCtx, "auctions", c))
	s.Equal(9, c.Count)

	c = &entry{}
	s.NoError(s.back.Get(mockCtx, "auctions", c))
	s.Equal(9, c.Count)
}
