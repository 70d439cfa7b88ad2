package repository

import (
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type paramsRepo struct {
	q query.Mongo
}

func NewParamsRepo(q query.Mongo) auction.ParamsRepo {
	return &paramsRepo{q: q}
}

func (r *paramsRepo) FindOne(c bCtx.Ctx, chainId domain.ChainId) (*auction.Params, error) {
	selector := bson.M{"chainId": chainId}

	res := &auction.Params{}

	err := r.q.FindOne(c, domain.TableAuctionParams, selector, res)

	if err == query.ErrNotFound {
		return auction.DefaultParams(chainId), nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"chainId": chainId,
			"err":     err,
		}).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (r *paramsRepo) Patch(c bCtx.Ctx, chainId domain.ChainId, patchable auction.ParamsPatchable) error {
	selector := bson.M{"chainId": chainId}

	err := r.q.Patch(c, domain.TableAuctionParams, selector, patchable)

	if err == query.ErrNotFound {
		// first write for this chain, store defaults with the patch applied
		params := auction.DefaultParams(chainId)
		if patchable.MinBidIncrementBps != nil {
			params.MinBidIncrementBps = *patchable.MinBidIncrementBps
		}
		if patchable.SoftClosePeriodSec != nil {
			params.SoftClosePeriodSec = *patchable.SoftClosePeriodSec
		}
		if patchable.ExtensionPeriodSec != nil {
			params.ExtensionPeriodSec = *patchable.ExtensionPeriodSec
		}
		if patchable.UpdatedAt != nil {
			params.UpdatedAt = *patchable.UpdatedAt
		}
		if err := r.q.Upsert(c, domain.TableAuctionParams, selector, params); err != nil {
			c.WithFields(log.Fields{
				"chainId": chainId,
				"params":  params,
				"err":     err,
			}).Error("q.Upsert failed")
			return err
		}
		return nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"chainId":   chainId,
			"patchable": patchable,
			"err":       err,
		}).Error("q.Patch failed")
		return err
	}

	return nil
}
