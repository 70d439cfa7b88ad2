package notifier

import (
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
)

// noopNotifier is wired when no bot key is configured.
type noopNotifier struct{}

func NewNoop() auction.Notifier {
	return &noopNotifier{}
}

func (n *noopNotifier) NotifyAuctionCreated(c ctx.Ctx, a *auction.Auction) error {
	return nil
}

func (n *noopNotifier) NotifyNewBid(c ctx.Ctx, a *auction.Auction, bid *auction.Bid) error {
	return nil
}

func (n *noopNotifier) NotifyAuctionCancelled(c ctx.Ctx, a *auction.Auction) error {
	return nil
}

func (n *noopNotifier) NotifyAuctionSettled(c ctx.Ctx, a *auction.Auction) error {
	return nil
}

func (n *noopNotifier) NotifyParamsUpdated(c ctx.Ctx, chainId domain.ChainId, name string, value int64) error {
	return nil
}
