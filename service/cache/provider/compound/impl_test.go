package compound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
	"github.com/x-xyz/auctionhouse/service/cache/provider/primitive"
)

var mockCtx = ctx.Background()

type compoundSuite struct {
	suite.Suite
	front provider.Provider
	back  provider.Provider
	im    *impl
}

func TestCompoundSuite(t *testing.T) {
	suite.Run(t, new(compoundSuite))
}

func (ts *compoundSuite) SetupTest() {
	ts.front = primitive.NewPrimitive("front", 1)
	ts.back = primitive.NewPrimitive("back", 1)
	ts.im = NewCompound([]provider.Provider{ts.front, ts.back}).(*impl)
}

func (ts *compoundSuite) TestSetWritesEveryLayer() {
	payload := []byte(`{"auctionId":7}`)
	ts.NoError(ts.im.Set(mockCtx, "auction:7", payload, time.Minute))

	for _, layer := range []provider.Provider{ts.front, ts.back} {
		got, _, err := layer.Get(mockCtx, "auction:7")
		ts.NoError(err)
		ts.Equal(payload, got)
	}
}

func (ts *compoundSuite) TestGetStopsAtFirstHit() {
	ts.NoError(ts.front.Set(mockCtx, "auction:7", []byte("front"), time.Minute))
	ts.NoError(ts.back.Set(mockCtx, "auction:7", []byte("back"), time.Minute))

	got, _, err := ts.im.Get(mockCtx, "auction:7")
	ts.NoError(err)
	ts.Equal([]byte("front"), got)
}

func (ts *compoundSuite) TestGetMissesEveryLayer() {
	_, _, err := ts.im.Get(mockCtx, "auction:404")
	ts.ErrorIs(err, provider.ErrNotFound)
}

func (ts *compoundSuite) TestGetBackfillsEarlierLayers() {
	payload := []byte(`{"auctionId":7}`)
	ts.NoError(ts.back.Set(mockCtx, "auction:7", payload, time.Minute))

	_, _, err := ts.front.Get(mockCtx, "auction:7")
	ts.ErrorIs(err, provider.ErrNotFound)

	got, _, err := ts.im.Get(mockCtx, "auction:7")
	ts.NoError(err)
	ts.Equal(payload, got)

	// the hit was copied into the layer in front of it
	got, _, err = ts.front.Get(mockCtx, "auction:7")
	ts.NoError(err)
	ts.Equal(payload, got)
}

func (ts *compoundSuite) TestDelClearsEveryLayer() {
	ts.NoError(ts.im.Set(mockCtx, "auction:7", []byte("x"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "auction:7"))

	for _, layer := range []provider.Provider{ts.front, ts.back} {
		_, _, err := layer.Get(mockCtx, "auction:7")
		ts.ErrorIs(err, provider.ErrNotFound)
	}
}
