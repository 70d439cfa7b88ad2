package usecase

import (
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain/healthcheck"
)

type impl struct {
	repo healthcheck.Repo
}

func New(repo healthcheck.Repo) healthcheck.Usecase {
	return &impl{repo: repo}
}

func (im *impl) Check(context ctx.Ctx) error {
	return im.repo.Ping(context)
}
