package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	mAuction "github.com/x-xyz/auctionhouse/domain/auction/mocks"
)

type paramsSuite struct {
	suite.Suite

	paramsRepo *mAuction.ParamsRepo
	notifier   *mAuction.Notifier
	im         *paramsImpl
}

func TestParamsSuite(t *testing.T) {
	suite.Run(t, new(paramsSuite))
}

func (s *paramsSuite) SetupTest() {
	s.paramsRepo = &mAuction.ParamsRepo{}
	s.notifier = &mAuction.Notifier{}
	s.im = NewParamsUseCase(&ParamsUseCaseCfg{
		ParamsRepo: s.paramsRepo,
		Notifier:   s.notifier,
	}).(*paramsImpl)
}

func (s *paramsSuite) TearDownTest() {
	s.paramsRepo.AssertExpectations(s.T())
	s.notifier.AssertExpectations(s.T())
}

func (s *paramsSuite) TestGet() {
	params := auction.DefaultParams(chainId)

	s.paramsRepo.On("FindOne", mockCtx, chainId).Return(params, nil).Once()

	res, err := s.im.Get(mockCtx, chainId)
	s.NoError(err)
	s.Equal(params, res)
}

func (s *paramsSuite) TestSetMinBidIncrementBps() {
	s.paramsRepo.On("Patch", mockCtx, chainId, mock.MatchedBy(func(p auction.ParamsPatchable) bool {
		return p.MinBidIncrementBps != nil && *p.MinBidIncrementBps == int64(250) &&
			p.SoftClosePeriodSec == nil &&
			p.ExtensionPeriodSec == nil &&
			p.UpdatedAt != nil
	})).Return(nil).Once()
	s.notifier.On("NotifyParamsUpdated", mockCtx, chainId, "minBidIncrementBps", int64(250)).Return(nil).Once()

	s.NoError(s.im.SetMinBidIncrementBps(mockCtx, chainId, 250))
}

func (s *paramsSuite) TestSetSoftClosePeriod() {
	s.paramsRepo.On("Patch", mockCtx, chainId, mock.MatchedBy(func(p auction.ParamsPatchable) bool {
		return p.SoftClosePeriodSec != nil && *p.SoftClosePeriodSec == int64(900) &&
			p.MinBidIncrementBps == nil &&
			p.ExtensionPeriodSec == nil
	})).Return(nil).Once()
	s.notifier.On("NotifyParamsUpdated", mockCtx, chainId, "softClosePeriodSec", int64(900)).Return(nil).Once()

	s.NoError(s.im.SetSoftClosePeriod(mockCtx, chainId, 900))
}

func (s *paramsSuite) TestSetAuctionExtensionPeriod() {
	s.paramsRepo.On("Patch", mockCtx, chainId, mock.MatchedBy(func(p auction.ParamsPatchable) bool {
		return p.ExtensionPeriodSec != nil && *p.ExtensionPeriodSec == int64(300) &&
			p.MinBidIncrementBps == nil &&
			p.SoftClosePeriodSec == nil
	})).Return(nil).Once()
	s.notifier.On("NotifyParamsUpdated", mockCtx, chainId, "extensionPeriodSec", int64(300)).Return(nil).Once()

	s.NoError(s.im.SetAuctionExtensionPeriod(mockCtx, chainId, 300))
}

func (s *paramsSuite) TestSetterSurfacesRepoError() {
	s.paramsRepo.On("Patch", mockCtx, chainId, mock.Anything).Return(domain.ErrNotFound).Once()

	s.Equal(domain.ErrNotFound, s.im.SetMinBidIncrementBps(mockCtx, chainId, 250))
}
