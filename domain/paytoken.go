package domain

import (
	"github.com/x-xyz/auctionhouse/base/ctx"
)

type Id struct {
	ChainId ChainId `bson:"chainId"`
	Address Address `bson:"address"`
}

// PayToken is a fungible token registered as a legal auction currency.
type PayToken struct {
	Name          string  `json:"name" bson:"name"`
	Symbol        string  `json:"symbol" bson:"symbol"`
	TokenDecimals int32   `json:"tokenDecimals" bson:"tokenDecimals"`
	ChainId       ChainId `json:"chainId" bson:"chainId"`
	Address       Address `json:"address" bson:"address"`
	IsMainnet     bool    `json:"isMainnet" bson:"isMainnet"`
}

func (t *PayToken) ToId() *Id {
	return &Id{
		ChainId: t.ChainId,
		Address: t.Address,
	}
}

// PayTokenRepo stores registered currencies. FindOne returns (nil, nil)
// when the token is not registered.
type PayTokenRepo interface {
	FindOne(ctx.Ctx, ChainId, Address) (*PayToken, error)
	Upsert(ctx.Ctx, *PayToken) error
}

type PayTokenUseCase interface {
	Register(ctx.Ctx, *PayToken) error
}
