package ens

import (
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

// ENS reverse resolves addresses to display names for notifications.
type ENS interface {
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
}
