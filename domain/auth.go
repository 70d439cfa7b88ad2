package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/auctionhouse/base/ctx"
)

// JwtCustomClaims carries the wallet address a bearer token was
// issued to.
type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken issues a token for address, creating the account on
	// first sight.
	SignToken(ctx ctx.Ctx, address Address) (string, error)
	// ParseToken verifies a token and returns the address inside.
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
