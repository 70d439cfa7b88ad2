package auction

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

const (
	DefaultMinBidIncrementBps = int64(100)
	DefaultSoftClosePeriodSec = int64(600)
	DefaultExtensionPeriodSec = int64(600)
)

// Params are the operator tunable bidding parameters. They are read at bid
// time, so updates only affect bids placed afterwards.
type Params struct {
	ChainId domain.ChainId `json:"chainId" bson:"chainId"`
	// MinBidIncrementBps is applied to the previous winning amount in parts
	// per ten thousand. The first bid of an auction only has to clear the
	// reserve price.
	MinBidIncrementBps int64 `json:"minBidIncrementBps" bson:"minBidIncrementBps"`
	// SoftClosePeriodSec is the trailing window before the deadline during
	// which an accepted bid extends the auction.
	SoftClosePeriodSec int64 `json:"softClosePeriodSec" bson:"softClosePeriodSec"`
	// ExtensionPeriodSec is added to the previous deadline on a soft close.
	ExtensionPeriodSec int64     `json:"extensionPeriodSec" bson:"extensionPeriodSec"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (p *Params) SoftClosePeriod() time.Duration {
	return time.Duration(p.SoftClosePeriodSec) * time.Second
}

func (p *Params) ExtensionPeriod() time.Duration {
	return time.Duration(p.ExtensionPeriodSec) * time.Second
}

func DefaultParams(chainId domain.ChainId) *Params {
	return &Params{
		ChainId:            chainId,
		MinBidIncrementBps: DefaultMinBidIncrementBps,
		SoftClosePeriodSec: DefaultSoftClosePeriodSec,
		ExtensionPeriodSec: DefaultExtensionPeriodSec,
	}
}

type ParamsPatchable struct {
	MinBidIncrementBps *int64     `bson:"minBidIncrementBps,omitempty"`
	SoftClosePeriodSec *int64     `bson:"softClosePeriodSec,omitempty"`
	ExtensionPeriodSec *int64     `bson:"extensionPeriodSec,omitempty"`
	UpdatedAt          *time.Time `bson:"updatedAt,omitempty"`
}

type ParamsRepo interface {
	// FindOne returns the chain's params, or defaults if none were stored.
	FindOne(ctx ctx.Ctx, chainId domain.ChainId) (*Params, error)
	Patch(ctx ctx.Ctx, chainId domain.ChainId, patchable ParamsPatchable) error
}

type ParamsUseCase interface {
	Get(ctx ctx.Ctx, chainId domain.ChainId) (*Params, error)
	SetMinBidIncrementBps(ctx ctx.Ctx, chainId domain.ChainId, value int64) error
	SetSoftClosePeriod(ctx ctx.Ctx, chainId domain.ChainId, seconds int64) error
	SetAuctionExtensionPeriod(ctx ctx.Ctx, chainId domain.ChainId, seconds int64) error
}
