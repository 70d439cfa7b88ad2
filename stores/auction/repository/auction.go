package repository

import (
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

const counterName = "auctions"

// counterDoc is the per chain registry counter, bumped once per created
// auction and never decreased.
type counterDoc struct {
	ChainId domain.ChainId `bson:"chainId"`
	Name    string         `bson:"name"`
	Value   int64          `bson:"value"`
}

func makeFindQuery(optFns ...auction.FindAllOptionsFunc) (bson.M, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}

	if opts.ChainId != nil {
		qry["chainId"] = *opts.ChainId
	}

	if opts.Status != nil {
		qry["status"] = *opts.Status
	}

	if opts.Seller != nil {
		qry["seller"] = opts.Seller.ToLower()
	}

	if opts.ContractAddress != nil {
		qry["contractAddress"] = opts.ContractAddress.ToLower()
	}

	if opts.EndTimeLT != nil {
		qry["endTime"] = bson.M{"$lt": *opts.EndTimeLT}
	}

	return qry, nil
}

type auctionRepo struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionRepo{q: q}
}

func (r *auctionRepo) FindAll(c bCtx.Ctx, optFns ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("auction.GetFindAllOptions failed")
		return nil, err
	}

	qry, err := makeFindQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindQuery failed")
		return nil, err
	}

	offset := 0
	limit := 0
	sort := "-createdAt"

	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}

	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	if opts.Sort != nil {
		sort = *opts.Sort
	}

	res := []*auction.Auction{}

	err = r.q.Search(c, domain.TableAuctions, offset, limit, sort, qry, &res)

	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (r *auctionRepo) FindOne(c bCtx.Ctx, id auction.Id) (*auction.Auction, error) {
	res := &auction.Auction{}

	err := r.q.FindOne(c, domain.TableAuctions, id, res)

	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (r *auctionRepo) Count(c bCtx.Ctx, optFns ...auction.FindAllOptionsFunc) (int, error) {
	qry, err := makeFindQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindQuery failed")
		return 0, err
	}

	cnt, err := r.q.Count(c, domain.TableAuctions, qry)
	if err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Count failed")
		return 0, err
	}

	return cnt, nil
}

func (r *auctionRepo) Insert(c bCtx.Ctx, a *auction.Auction) error {
	a.LowerCase()
	if err := r.q.Insert(c, domain.TableAuctions, a); err != nil {
		c.WithFields(log.Fields{
			"auction": a,
			"err":     err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *auctionRepo) Update(c bCtx.Ctx, id auction.Id, patchable auction.Patchable) error {
	if patchable.WinningBid != nil {
		patchable.WinningBid.Bidder = patchable.WinningBid.Bidder.ToLower()
	}

	err := r.q.Patch(c, domain.TableAuctions, id, patchable)

	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":        id,
			"patchable": patchable,
			"err":       err,
		}).Error("q.Patch failed")
		return err
	}

	return nil
}

func (r *auctionRepo) NextAuctionId(c bCtx.Ctx, chainId domain.ChainId) (int64, error) {
	selector := bson.M{"chainId": chainId, "name": counterName}

	res := counterDoc{}

	if err := r.q.Increment(c, domain.TableCounters, selector, &res, "value", int64(1)); err != nil {
		c.WithFields(log.Fields{
			"chainId": chainId,
			"err":     err,
		}).Error("q.Increment failed")
		return 0, err
	}

	return res.Value, nil
}

func (r *auctionRepo) AuctionsCreated(c bCtx.Ctx, chainId domain.ChainId) (int64, error) {
	selector := bson.M{"chainId": chainId, "name": counterName}

	res := counterDoc{}

	err := r.q.FindOne(c, domain.TableCounters, selector, &res)

	if err == query.ErrNotFound {
		// counter is seeded lazily by the first create
		return 0, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"chainId": chainId,
			"err":     err,
		}).Error("q.FindOne failed")
		return 0, err
	}

	return res.Value, nil
}
