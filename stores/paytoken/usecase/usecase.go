package usecase

import (
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/base/validator"
	"github.com/x-xyz/auctionhouse/domain"
)

type impl struct {
	repo domain.PayTokenRepo
}

func New(repo domain.PayTokenRepo) domain.PayTokenUseCase {
	return &impl{repo: repo}
}

// Register adds or updates an accepted auction currency. The native
// sentinel is implicit and cannot be registered.
func (im *impl) Register(ctx bCtx.Ctx, payToken *domain.PayToken) error {
	if !validator.IsValidAddress(string(payToken.Address)) {
		return domain.ErrInvalidAddress
	}
	if payToken.Address.IsNative() {
		return domain.ErrInvalidCurrency
	}
	// erc20 decimals is a uint8
	if payToken.TokenDecimals < 0 || payToken.TokenDecimals > 255 {
		return domain.ErrBadParamInput
	}
	if payToken.Symbol == "" {
		return domain.ErrBadParamInput
	}

	payToken.Address = payToken.Address.ToLower()

	if err := im.repo.Upsert(ctx, payToken); err != nil {
		ctx.WithFields(log.Fields{
			"id":  payToken.ToId(),
			"err": err,
		}).Error("payTokenRepo.Upsert failed")
		return err
	}
	return nil
}
