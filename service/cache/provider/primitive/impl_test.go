package primitive

import (
	"testing"
	"time"

	"github.com/coocood/freecache"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
)

var mockCtx = ctx.Background()

type primitiveSuite struct {
	suite.Suite
	im *impl
}

func TestPrimitiveSuite(t *testing.T) {
	suite.Run(t, new(primitiveSuite))
}

func (ts *primitiveSuite) SetupTest() {
	ts.im = NewPrimitive("test", 1).(*impl)
}

func (ts *primitiveSuite) TestRoundTrip() {
	payload := []byte(`{"auctionId":7}`)

	ts.NoError(ts.im.Set(mockCtx, "auction:7", payload, 10*time.Second))

	got, ttl, err := ts.im.Get(mockCtx, "auction:7")
	ts.NoError(err)
	ts.Equal(payload, got)
	// freecache keeps an absolute expiry, Get converts it back
	ts.True(ttl > 0 && ttl <= 10*time.Second, "ttl %v", ttl)
}

func (ts *primitiveSuite) TestGetMiss() {
	got, _, err := ts.im.Get(mockCtx, "auction:404")
	ts.Nil(got)
	ts.ErrorIs(err, provider.ErrNotFound)
}

func (ts *primitiveSuite) TestEntryExpires() {
	ts.NoError(ts.im.Set(mockCtx, "auction:7", []byte("x"), time.Second))

	time.Sleep(1100 * time.Millisecond)

	_, _, err := ts.im.Get(mockCtx, "auction:7")
	ts.ErrorIs(err, provider.ErrNotFound)
}

func (ts *primitiveSuite) TestDelRemovesEntry() {
	ts.NoError(ts.im.Set(mockCtx, "auction:7", []byte("x"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "auction:7"))

	_, err := ts.im.cache.Get([]byte("auction:7"))
	ts.Equal(freecache.ErrNotFound, err)
}
