package usecase

import (
	"time"

	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
)

type ParamsUseCaseCfg struct {
	ParamsRepo auction.ParamsRepo
	Notifier   auction.Notifier
}

type paramsImpl struct {
	paramsRepo auction.ParamsRepo
	notifier   auction.Notifier
}

func NewParamsUseCase(cfg *ParamsUseCaseCfg) auction.ParamsUseCase {
	return &paramsImpl{
		paramsRepo: cfg.ParamsRepo,
		notifier:   cfg.Notifier,
	}
}

func (im *paramsImpl) Get(ctx bCtx.Ctx, chainId domain.ChainId) (*auction.Params, error) {
	params, err := im.paramsRepo.FindOne(ctx, chainId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"err":     err,
		}).Error("paramsRepo.FindOne failed")
		return nil, err
	}
	return params, nil
}

func (im *paramsImpl) SetMinBidIncrementBps(ctx bCtx.Ctx, chainId domain.ChainId, value int64) error {
	now := time.Now()
	if err := im.paramsRepo.Patch(ctx, chainId, auction.ParamsPatchable{
		MinBidIncrementBps: &value,
		UpdatedAt:          &now,
	}); err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"value":   value,
			"err":     err,
		}).Error("paramsRepo.Patch failed")
		return err
	}

	if err := im.notifier.NotifyParamsUpdated(ctx, chainId, "minBidIncrementBps", value); err != nil {
		ctx.WithField("err", err).Warn("notifier.NotifyParamsUpdated failed")
	}

	return nil
}

func (im *paramsImpl) SetSoftClosePeriod(ctx bCtx.Ctx, chainId domain.ChainId, seconds int64) error {
	now := time.Now()
	if err := im.paramsRepo.Patch(ctx, chainId, auction.ParamsPatchable{
		SoftClosePeriodSec: &seconds,
		UpdatedAt:          &now,
	}); err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"value":   seconds,
			"err":     err,
		}).Error("paramsRepo.Patch failed")
		return err
	}

	if err := im.notifier.NotifyParamsUpdated(ctx, chainId, "softClosePeriodSec", seconds); err != nil {
		ctx.WithField("err", err).Warn("notifier.NotifyParamsUpdated failed")
	}

	return nil
}

func (im *paramsImpl) SetAuctionExtensionPeriod(ctx bCtx.Ctx, chainId domain.ChainId, seconds int64) error {
	now := time.Now()
	if err := im.paramsRepo.Patch(ctx, chainId, auction.ParamsPatchable{
		ExtensionPeriodSec: &seconds,
		UpdatedAt:          &now,
	}); err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"value":   seconds,
			"err":     err,
		}).Error("paramsRepo.Patch failed")
		return err
	}

	if err := im.notifier.NotifyParamsUpdated(ctx, chainId, "extensionPeriodSec", seconds); err != nil {
		ctx.WithField("err", err).Warn("notifier.NotifyParamsUpdated failed")
	}

	return nil
}
