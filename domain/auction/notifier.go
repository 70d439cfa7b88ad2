package auction

import (
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

// Notifier pushes auction events to an operations channel. Implementations
// must not fail the triggering operation: errors are logged by callers and
// otherwise ignored.
type Notifier interface {
	NotifyAuctionCreated(c ctx.Ctx, a *Auction) error
	NotifyNewBid(c ctx.Ctx, a *Auction, bid *Bid) error
	NotifyAuctionCancelled(c ctx.Ctx, a *Auction) error
	NotifyAuctionSettled(c ctx.Ctx, a *Auction) error
	NotifyParamsUpdated(c ctx.Ctx, chainId domain.ChainId, name string, value int64) error
}
