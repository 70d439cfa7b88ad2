// Package healthcheck backs the liveness probe.
package healthcheck

import (
	"github.com/x-xyz/auctionhouse/base/ctx"
)

type Usecase interface {
	Check(context ctx.Ctx) error
}

// Repo proves the backing stores answer.
type Repo interface {
	Ping(context ctx.Ctx) error
}
