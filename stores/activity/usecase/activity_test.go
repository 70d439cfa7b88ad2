package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/activity"
	mActivity "github.com/x-xyz/auctionhouse/domain/activity/mocks"
)

var mockCtx = bCtx.Background()

type activitySuite struct {
	suite.Suite

	repo *mActivity.Repo
	im   *impl
}

func TestActivitySuite(t *testing.T) {
	suite.Run(t, new(activitySuite))
}

func (s *activitySuite) SetupTest() {
	s.repo = &mActivity.Repo{}
	s.im = New(s.repo).(*impl)
}

func (s *activitySuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func (s *activitySuite) TestFindActivities() {
	items := []activity.Activity{
		{
			ChainId:   1,
			AuctionId: 7,
			Type:      activity.ActivityTypePlaceBid,
			Account:   domain.Address("0x9b5c509ce4eb89cd9b6c2c0cbcaf22a1d5f4ae9e"),
			Time:      time.Now(),
		},
	}

	s.repo.On("FindActivities", mock.Anything, mock.Anything).Return(items, nil).Once()
	s.repo.On("CountActivities", mock.Anything, mock.Anything).Return(35, nil).Once()

	res, err := s.im.FindActivities(mockCtx, activity.WithAuction(1, 7))
	s.Nil(err)
	s.Equal(items, res.Items)
	s.Equal(35, res.Count)
}

func (s *activitySuite) TestFindActivitiesSurfacesError() {
	s.repo.On("FindActivities", mock.Anything, mock.Anything).Return(nil, domain.ErrInternalServerError).Once()
	s.repo.On("CountActivities", mock.Anything, mock.Anything).Return(0, nil).Once()

	_, err := s.im.FindActivities(mockCtx, activity.WithAuction(1, 7))
	s.Equal(domain.ErrInternalServerError, err)
}
