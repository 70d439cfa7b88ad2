package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	mDomain "github.com/x-xyz/auctionhouse/domain/mocks"
)

var mockCtx = ctx.Background()

type payTokenSuite struct {
	suite.Suite

	repo *mDomain.PayTokenRepo
	im   domain.PayTokenUseCase
}

func TestPayTokenSuite(t *testing.T) {
	suite.Run(t, new(payTokenSuite))
}

func (s *payTokenSuite) SetupTest() {
	s.repo = &mDomain.PayTokenRepo{}
	s.im = New(s.repo)
}

func (s *payTokenSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func (s *payTokenSuite) TestRegisterLowercasesAddress() {
	s.repo.On("Upsert", mockCtx, mock.MatchedBy(func(pt *domain.PayToken) bool {
		return pt.Address == "0x6b175474e89094c44da98b954eedeac495271d0f"
	})).Return(nil).Once()

	err := s.im.Register(mockCtx, &domain.PayToken{
		Name:          "Dai Stablecoin",
		Symbol:        "DAI",
		TokenDecimals: 18,
		ChainId:       1,
		Address:       "0x6B175474E89094C44Da98b954EedeAC495271d0F",
	})
	s.Nil(err)
}

func (s *payTokenSuite) TestRegisterRejectsMalformedAddress() {
	err := s.im.Register(mockCtx, &domain.PayToken{
		Symbol:        "DAI",
		TokenDecimals: 18,
		ChainId:       1,
		Address:       "0x1234",
	})
	s.ErrorIs(err, domain.ErrInvalidAddress)
}

func (s *payTokenSuite) TestRegisterRejectsNativeSentinel() {
	err := s.im.Register(mockCtx, &domain.PayToken{
		Symbol:        "ETH",
		TokenDecimals: 18,
		ChainId:       1,
		Address:       domain.EmptyAddress,
	})
	s.ErrorIs(err, domain.ErrInvalidCurrency)
}

func (s *payTokenSuite) TestRegisterRejectsBadDecimals() {
	err := s.im.Register(mockCtx, &domain.PayToken{
		Symbol:        "DAI",
		TokenDecimals: 300,
		ChainId:       1,
		Address:       "0x6b175474e89094c44da98b954eedeac495271d0f",
	})
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *payTokenSuite) TestRegisterRejectsEmptySymbol() {
	err := s.im.Register(mockCtx, &domain.PayToken{
		Name:          "Dai Stablecoin",
		TokenDecimals: 18,
		ChainId:       1,
		Address:       "0x6b175474e89094c44da98b954eedeac495271d0f",
	})
	s.ErrorIs(err, domain.ErrBadParamInput)
}
