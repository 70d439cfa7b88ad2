package usecase

import (
	"github.com/viney-shih/goroutines"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain/activity"
)

type impl struct {
	repo activity.Repo
}

func New(repo activity.Repo) activity.Usecase {
	return &impl{repo: repo}
}

func (im *impl) FindActivities(c bCtx.Ctx, opts ...activity.FindActivityOptions) (*activity.SearchResult, error) {
	res := &activity.SearchResult{}

	// page and count hit different indexes, fetch them in parallel
	b := goroutines.NewBatch(2, goroutines.WithBatchSize(2))
	defer b.Close()
	b.Queue(func() (interface{}, error) {
		return im.repo.FindActivities(c, opts...)
	})
	b.Queue(func() (interface{}, error) {
		return im.repo.CountActivities(c, opts...)
	})
	b.QueueComplete()

	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			c.WithFields(log.Fields{
				"err": err,
			}).Error("activity feed lookup failed")
			return nil, err
		}
		switch v := ret.Value().(type) {
		case []activity.Activity:
			res.Items = v
		case int:
			res.Count = v
		}
	}

	return res, nil
}
