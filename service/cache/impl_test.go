package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain/keys"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
	"github.com/x-xyz/auctionhouse/service/cache/provider/primitive"
)

var mockCtx = ctx.Background()

type entry struct {
	Alias string `json:"alias"`
}

type cacheSuite struct {
	suite.Suite
	im       *impl
	provider provider.Provider
}

func TestCache(t *testing.T) {
	suite.Run(t, new(cacheSuite))
}

func (s *cacheSuite) SetupTest() {
	s.provider = primitive.NewPrimitive("test", 64)
	s.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "testing",
		Cache: s.provider,
	}).(*impl)
}

func (s *cacheSuite) raw(k string) ([]byte, error) {
	val, _, err := s.provider.Get(mockCtx, keys.RedisKey(s.im.pfx, k))
	return val, err
}

func (s *cacheSuite) TestGetMissThenHit() {
	c := &entry{}
	s.Equal(ErrNotFound, s.im.Get(mockCtx, "seller", c))

	v := entry{Alias: "alice"}
	raw, err := json.Marshal(v)
	s.NoError(err)
	s.NoError(s.provider.Set(mockCtx, keys.RedisKey(s.im.pfx, "seller"), raw, time.Second))

	s.NoError(s.im.Get(mockCtx, "seller", c))
	s.Equal(v, *c)
}

func (s *cacheSuite) TestSetAppliesPrefixAndTtl() {
	v := entry{Alias: "bob"}
	s.NoError(s.im.Set(mockCtx, "bidder", v))

	raw, err := s.raw("bidder")
	s.NoError(err)
	c := &entry{}
	s.NoError(json.Unmarshal(raw, c))
	s.Equal(v, *c)

	time.Sleep(time.Second + 50*time.Millisecond)
	_, err = s.raw("bidder")
	s.Equal(provider.ErrNotFound, err)
}

func (s *cacheSuite) TestGetByFunc() {
	var calls int
	getter := func() (interface{}, error) {
		calls++
		return &entry{Alias: "carol"}, nil
	}

	c := &entry{}
	s.NoError(s.im.GetByFunc(mockCtx, "alias", c, getter))
	s.Equal("carol", c.Alias)
	s.Equal(1, calls)

	// second read is served from cache
	c = &entry{}
	s.NoError(s.im.GetByFunc(mockCtx, "alias", c, getter))
	s.Equal("carol", c.Alias)
	s.Equal(1, calls)
}

func (s *cacheSuite) TestGetByFuncPropagatesGetterError() {
	c := &entry{}
	err := s.im.GetByFunc(mockCtx, "broken", c, func() (interface{}, error) {
		return nil, errors.New("upstream down")
	})
	s.EqualError(err, "upstream down")
}
