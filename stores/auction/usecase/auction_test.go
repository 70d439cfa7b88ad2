package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/activity"
	mActivity "github.com/x-xyz/auctionhouse/domain/activity/mocks"
	"github.com/x-xyz/auctionhouse/domain/auction"
	mAuction "github.com/x-xyz/auctionhouse/domain/auction/mocks"
	mDomain "github.com/x-xyz/auctionhouse/domain/mocks"
	"github.com/x-xyz/auctionhouse/service/chain"
	mContract "github.com/x-xyz/auctionhouse/service/chain/contract/mocks"
	mChain "github.com/x-xyz/auctionhouse/service/chain/mocks"
	mQuery "github.com/x-xyz/auctionhouse/service/query/mocks"
	"golang.org/x/xerrors"
)

var (
	mockCtx = ctx.Background()

	chainId  = domain.ChainId(1)
	seller   = domain.Address("0x56b8ab544c74e94b8b8a614c3d0d5fe22b9f7d2e")
	bidderA  = domain.Address("0x3d8e0b45bbbf1feae7a40cd26bb5d2c5575a8b6a")
	bidderB  = domain.Address("0x9a4f1c0be7e3bd6f8c9a88e2b2c34b747f4d2a11")
	operator = domain.Address("0xa1b54dcfb42e68f470895acb3b2513cdd6d6d24f")
	nftAddr  = domain.Address("0x4a8b9e3f21c05c1cbe444c9b8b5f5d7cfe981b3c")
	daiAddr  = domain.Address("0x6b175474e89094c44da98b954eedeac495271d0f")

	custodianAddr = common.HexToAddress("0x91b5d0a5ab0cb63d5c8e62f171a5a7cf4b3dcf61")

	// 18 decimal base units. reserve 10, bids exercise the 1% increment.
	reserve10 = "10000000000000000000"
	bid1005   = "10050000000000000000"
	bid101    = "10100000000000000000"
)

func bigFromString(s string) *big.Int {
	n, _ := new(big.Int).SetString(s, 10)
	return n
}

type auctionSuite struct {
	suite.Suite

	auctionRepo  *mAuction.Repo
	paramsRepo   *mAuction.ParamsRepo
	activityRepo *mActivity.Repo
	paytokenRepo *mDomain.PayTokenRepo
	erc721       *mContract.Erc721Contract
	erc1155      *mContract.Erc1155Contract
	erc20        *mContract.Erc20Contract
	chainClient  *mChain.Client
	notifier     *mAuction.Notifier
	mongo        *mQuery.Mongo
	im           *impl
}

func TestAuctionSuite(t *testing.T) {
	suite.Run(t, new(auctionSuite))
}

func (s *auctionSuite) SetupTest() {
	s.auctionRepo = &mAuction.Repo{}
	s.paramsRepo = &mAuction.ParamsRepo{}
	s.activityRepo = &mActivity.Repo{}
	s.paytokenRepo = &mDomain.PayTokenRepo{}
	s.erc721 = &mContract.Erc721Contract{}
	s.erc1155 = &mContract.Erc1155Contract{}
	s.erc20 = &mContract.Erc20Contract{}
	s.chainClient = &mChain.Client{}
	s.notifier = &mAuction.Notifier{}
	s.mongo = &mQuery.Mongo{}
	s.im = New(&AuctionUseCaseCfg{
		AuctionRepo:  s.auctionRepo,
		ParamsRepo:   s.paramsRepo,
		ActivityRepo: s.activityRepo,
		PaytokenRepo: s.paytokenRepo,
		Erc721:       s.erc721,
		Erc1155:      s.erc1155,
		Erc20:        s.erc20,
		ChainClient:  s.chainClient,
		Notifier:     s.notifier,
		Mongo:        s.mongo,
	}).(*impl)
}

func (s *auctionSuite) TearDownTest() {
	s.auctionRepo.AssertExpectations(s.T())
	s.paramsRepo.AssertExpectations(s.T())
	s.activityRepo.AssertExpectations(s.T())
	s.paytokenRepo.AssertExpectations(s.T())
	s.erc721.AssertExpectations(s.T())
	s.erc1155.AssertExpectations(s.T())
	s.erc20.AssertExpectations(s.T())
	s.chainClient.AssertExpectations(s.T())
	s.notifier.AssertExpectations(s.T())
	s.mongo.AssertExpectations(s.T())
}

func (s *auctionSuite) expectTransaction() {
	s.mongo.
		On("RunWithTransaction", mockCtx, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error { return run(c) }).
		Once()
}

func activeAuction(endsIn time.Duration) *auction.Auction {
	created := time.Now().Add(-time.Hour)
	return &auction.Auction{
		ChainId:         chainId,
		AuctionId:       7,
		Seller:          seller,
		ContractAddress: nftAddr,
		TokenId:         domain.TokenId("42"),
		Quantity:        1,
		TokenType:       domain.TokenType721,
		Currency:        domain.EmptyAddress,
		ReservePrice:    reserve10,
		EndTime:         time.Now().Add(endsIn),
		Status:          auction.StatusActive,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func (s *auctionSuite) TestCreateAuction() {
	payload := auction.CreateAuctionPayload{
		ChainId:         chainId,
		Seller:          domain.Address("0x56B8AB544C74E94B8B8A614C3D0D5FE22B9F7D2E"),
		ContractAddress: nftAddr,
		TokenId:         domain.TokenId("42"),
		Quantity:        1,
		Currency:        domain.EmptyAddress,
		ReservePrice:    reserve10,
		EndTime:         time.Now().Add(24 * time.Hour),
	}

	s.erc721.On("Supports721Interface", mockCtx, int32(chainId), string(nftAddr)).Return(true, nil).Once()
	s.chainClient.On("Signer").Return(custodianAddr)
	s.erc721.
		On("TransferFrom", mockCtx, int32(chainId), string(nftAddr), string(seller), custodianAddr.Hex(), big.NewInt(42)).
		Return("0xcustodytx", nil).Once()

	s.expectTransaction()
	s.auctionRepo.On("NextAuctionId", mockCtx, chainId).Return(int64(1), nil).Once()
	s.auctionRepo.On("Insert", mockCtx, mock.MatchedBy(func(a *auction.Auction) bool {
		return a.ChainId == chainId &&
			a.AuctionId == 1 &&
			a.Seller == seller &&
			a.TokenType == domain.TokenType721 &&
			a.Status == auction.StatusActive &&
			a.ReservePrice == reserve10 &&
			a.EndTime.Equal(payload.EndTime)
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.MatchedBy(func(act *activity.Activity) bool {
		return act.Type == activity.ActivityTypeCreateAuction &&
			act.AuctionId == 1 &&
			act.Account == seller &&
			act.Quantity == "1" &&
			act.TxHash == "0xcustodytx"
	})).Return(nil).Once()
	s.notifier.On("NotifyAuctionCreated", mockCtx, mock.Anything).Return(nil).Once()

	res, err := s.im.CreateAuction(mockCtx, payload)
	s.NoError(err)
	s.Equal(int64(1), res.AuctionId)
	s.Equal(seller, res.Seller)
	s.Equal(auction.StatusActive, res.Status)
	s.Equal(domain.TokenType721, res.TokenType)
}

func (s *auctionSuite) TestCreateAuctionPayToken1155() {
	payload := auction.CreateAuctionPayload{
		ChainId:         chainId,
		Seller:          seller,
		ContractAddress: nftAddr,
		TokenId:         domain.TokenId("42"),
		Quantity:        3,
		Currency:        daiAddr,
		ReservePrice:    reserve10,
		EndTime:         time.Now().Add(24 * time.Hour),
	}

	s.erc721.On("Supports721Interface", mockCtx, int32(chainId), string(nftAddr)).Return(false, nil).Once()
	s.erc1155.On("Supports1155Interface", mockCtx, int32(chainId), string(nftAddr)).Return(true, nil).Once()
	s.paytokenRepo.
		On("FindOne", mockCtx, chainId, daiAddr).
		Return(&domain.PayToken{ChainId: chainId, Address: daiAddr, Symbol: "DAI", TokenDecimals: 18}, nil).Once()
	s.chainClient.On("Signer").Return(custodianAddr)
	s.erc1155.
		On("SafeTransferFrom", mockCtx, int32(chainId), string(nftAddr), string(seller), custodianAddr.Hex(), big.NewInt(42), big.NewInt(3)).
		Return("0xcustodytx", nil).Once()

	s.expectTransaction()
	s.auctionRepo.On("NextAuctionId", mockCtx, chainId).Return(int64(5), nil).Once()
	s.auctionRepo.On("Insert", mockCtx, mock.MatchedBy(func(a *auction.Auction) bool {
		return a.AuctionId == 5 &&
			a.TokenType == domain.TokenType1155 &&
			a.Quantity == 3 &&
			a.Currency == daiAddr
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.MatchedBy(func(act *activity.Activity) bool {
		return act.Type == activity.ActivityTypeCreateAuction && act.Quantity == "3"
	})).Return(nil).Once()
	s.notifier.On("NotifyAuctionCreated", mockCtx, mock.Anything).Return(nil).Once()

	res, err := s.im.CreateAuction(mockCtx, payload)
	s.NoError(err)
	s.Equal(int64(5), res.AuctionId)
	s.Equal(domain.TokenType1155, res.TokenType)
}

func (s *auctionSuite) TestCreateAuctionInvalidDeadline() {
	payload := auction.CreateAuctionPayload{
		ChainId:         chainId,
		Seller:          seller,
		ContractAddress: nftAddr,
		TokenId:         domain.TokenId("42"),
		Quantity:        1,
		Currency:        domain.EmptyAddress,
		ReservePrice:    reserve10,
		EndTime:         time.Now().Add(-time.Minute),
	}

	_, err := s.im.CreateAuction(mockCtx, payload)
	s.Equal(domain.ErrInvalidDeadline, err)
}

func (s *auctionSuite) TestCreateAuctionBadReservePrice() {
	payload := auction.CreateAuctionPayload{
		ChainId:         chainId,
		Seller:          seller,
		ContractAddress: nftAddr,
		TokenId:         domain.TokenId("42"),
		Quantity:        1,
		Currency:        domain.EmptyAddress,
		ReservePrice:    "12.5",
		EndTime:         time.Now().Add(time.Hour),
	}

	_, err := s.im.CreateAuction(mockCtx, payload)
	s.Equal(domain.ErrInvalidNumberFormat, err)
}

func (s *auctionSuite) TestCreateAuctionRejectsWrongQuantity() {
	payload := auction.CreateAuctionPayload{
		ChainId:         chainId,
		Seller:          seller,
		ContractAddress: nftAddr,
		TokenId:         domain.TokenId("42"),
		Quantity:        2,
		Currency:        domain.EmptyAddress,
		ReservePrice:    reserve10,
		EndTime:         time.Now().Add(time.Hour),
	}

	// unique assets carry exactly one unit
	s.erc721.On("Supports721Interface", mockCtx, int32(chainId), string(nftAddr)).Return(true, nil).Once()
	_, err := s.im.CreateAuction(mockCtx, payload)
	s.Equal(domain.ErrInvalidQuantity, err)

	// quantized assets need at least one unit
	payload.Quantity = 0
	s.erc721.On("Supports721Interface", mockCtx, int32(chainId), string(nftAddr)).Return(false, nil).Once()
	s.erc1155.On("Supports1155Interface", mockCtx, int32(chainId), string(nftAddr)).Return(true, nil).Once()
	_, err = s.im.CreateAuction(mockCtx, payload)
	s.Equal(domain.ErrInvalidQuantity, err)
}

func (s *auctionSuite) TestCreateAuctionUnsupportedContract() {
	payload := auction.CreateAuctionPayload{
		ChainId:         chainId,
		Seller:          seller,
		ContractAddress: nftAddr,
		TokenId:         domain.TokenId("42"),
		Quantity:        1,
		Currency:        domain.EmptyAddress,
		ReservePrice:    reserve10,
		EndTime:         time.Now().Add(time.Hour),
	}

	s.erc721.On("Supports721Interface", mockCtx, int32(chainId), string(nftAddr)).Return(false, nil).Once()
	s.erc1155.On("Supports1155Interface", mockCtx, int32(chainId), string(nftAddr)).Return(false, nil).Once()

	_, err := s.im.CreateAuction(mockCtx, payload)
	s.Equal(domain.ErrUnsupportedAssetKind, err)
}

func (s *auctionSuite) TestCreateAuctionProbeFailurePropagates() {
	payload := auction.CreateAuctionPayload{
		ChainId:         chainId,
		Seller:          seller,
		ContractAddress: nftAddr,
		TokenId:         domain.TokenId("42"),
		Quantity:        1,
		Currency:        domain.EmptyAddress,
		ReservePrice:    reserve10,
		EndTime:         time.Now().Add(time.Hour),
	}

	probeErr := xerrors.New("rpc unreachable")
	s.erc721.On("Supports721Interface", mockCtx, int32(chainId), string(nftAddr)).Return(false, probeErr).Once()

	_, err := s.im.CreateAuction(mockCtx, payload)
	s.Equal(probeErr, err)
}

func (s *auctionSuite) TestCreateAuctionUnknownChain() {
	payload := auction.CreateAuctionPayload{
		ChainId:         domain.ChainId(999),
		Seller:          seller,
		ContractAddress: nftAddr,
		TokenId:         domain.TokenId("42"),
		Quantity:        1,
		Currency:        domain.EmptyAddress,
		ReservePrice:    reserve10,
		EndTime:         time.Now().Add(time.Hour),
	}

	s.erc721.On("Supports721Interface", mockCtx, int32(999), string(nftAddr)).Return(false, chain.ErrUnsupportedChain).Once()

	_, err := s.im.CreateAuction(mockCtx, payload)
	s.Equal(domain.ErrInvalidChainId, err)
}

func (s *auctionSuite) TestCreateAuctionUnknownCurrency() {
	payload := auction.CreateAuctionPayload{
		ChainId:         chainId,
		Seller:          seller,
		ContractAddress: nftAddr,
		TokenId:         domain.TokenId("42"),
		Quantity:        1,
		Currency:        daiAddr,
		ReservePrice:    reserve10,
		EndTime:         time.Now().Add(time.Hour),
	}

	s.erc721.On("Supports721Interface", mockCtx, int32(chainId), string(nftAddr)).Return(true, nil).Once()
	s.paytokenRepo.On("FindOne", mockCtx, chainId, daiAddr).Return(nil, nil).Once()

	_, err := s.im.CreateAuction(mockCtx, payload)
	s.Equal(domain.ErrInvalidCurrency, err)
}

func (s *auctionSuite) TestPlaceBidFirstMustClearReserve() {
	a := activeAuction(time.Hour)
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.paramsRepo.On("FindOne", mockCtx, chainId).Return(auction.DefaultParams(chainId), nil).Once()

	_, err := s.im.PlaceBid(mockCtx, auction.PlaceBidPayload{
		ChainId:       chainId,
		AuctionId:     a.AuctionId,
		Bidder:        bidderA,
		Amount:        "9000000000000000000",
		AttachedValue: "9000000000000000000",
	})
	s.Equal(domain.ErrInvalidBidAmount, err)
}

func (s *auctionSuite) TestPlaceBidFirstBid() {
	a := activeAuction(time.Hour)
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.paramsRepo.On("FindOne", mockCtx, chainId).Return(auction.DefaultParams(chainId), nil).Once()
	s.expectTransaction()
	s.auctionRepo.On("Update", mockCtx, id, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.WinningBid != nil &&
			p.WinningBid.Bidder == bidderA &&
			p.WinningBid.Amount == reserve10 &&
			p.EndTime == nil &&
			p.Status == nil &&
			p.UpdatedAt != nil
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.MatchedBy(func(act *activity.Activity) bool {
		return act.Type == activity.ActivityTypePlaceBid &&
			act.Account == bidderA &&
			act.Price == reserve10
	})).Return(nil).Once()
	s.notifier.On("NotifyNewBid", mockCtx, mock.Anything, mock.Anything).Return(nil).Once()

	res, err := s.im.PlaceBid(mockCtx, auction.PlaceBidPayload{
		ChainId:       chainId,
		AuctionId:     a.AuctionId,
		Bidder:        bidderA,
		Amount:        reserve10,
		AttachedValue: reserve10,
	})
	s.NoError(err)
	s.Equal(bidderA, res.WinningBid.Bidder)
	s.Equal(reserve10, res.WinningBid.Amount)
}

func (s *auctionSuite) TestPlaceBidBelowIncrementRejected() {
	a := activeAuction(time.Hour)
	a.WinningBid = &auction.Bid{Bidder: bidderA, Amount: reserve10, BidTime: time.Now().Add(-time.Minute)}
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.paramsRepo.On("FindOne", mockCtx, chainId).Return(auction.DefaultParams(chainId), nil).Once()

	// 10.05 sits under the 1% step over 10
	_, err := s.im.PlaceBid(mockCtx, auction.PlaceBidPayload{
		ChainId:       chainId,
		AuctionId:     a.AuctionId,
		Bidder:        bidderB,
		Amount:        bid1005,
		AttachedValue: bid1005,
	})
	s.Equal(domain.ErrInvalidBidAmount, err)
}

func (s *auctionSuite) TestPlaceBidOutbidRefundsPrevious() {
	a := activeAuction(time.Hour)
	a.WinningBid = &auction.Bid{Bidder: bidderA, Amount: reserve10, BidTime: time.Now().Add(-time.Minute)}
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.paramsRepo.On("FindOne", mockCtx, chainId).Return(auction.DefaultParams(chainId), nil).Once()
	s.expectTransaction()
	s.auctionRepo.On("Update", mockCtx, id, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.WinningBid != nil &&
			p.WinningBid.Bidder == bidderB &&
			p.WinningBid.Amount == bid101
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.MatchedBy(func(act *activity.Activity) bool {
		return act.Type == activity.ActivityTypePlaceBid &&
			act.Account == bidderB &&
			act.Price == bid101
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.MatchedBy(func(act *activity.Activity) bool {
		return act.Type == activity.ActivityTypeBidRefunded &&
			act.Account == bidderA &&
			act.Price == reserve10
	})).Return(nil).Once()
	s.chainClient.
		On("TransferValue", mockCtx, int32(chainId), common.HexToAddress(string(bidderA)), bigFromString(reserve10)).
		Return("0xrefundtx", nil).Once()
	s.notifier.On("NotifyNewBid", mockCtx, mock.Anything, mock.Anything).Return(nil).Once()

	res, err := s.im.PlaceBid(mockCtx, auction.PlaceBidPayload{
		ChainId:       chainId,
		AuctionId:     a.AuctionId,
		Bidder:        bidderB,
		Amount:        bid101,
		AttachedValue: bid101,
	})
	s.NoError(err)
	s.Equal(bidderB, res.WinningBid.Bidder)
	s.Equal(bid101, res.WinningBid.Amount)
}

func (s *auctionSuite) TestPlaceBidNativeNeedsExactValue() {
	a := activeAuction(time.Hour)
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil)
	s.paramsRepo.On("FindOne", mockCtx, chainId).Return(auction.DefaultParams(chainId), nil)

	// nothing attached
	_, err := s.im.PlaceBid(mockCtx, auction.PlaceBidPayload{
		ChainId:   chainId,
		AuctionId: a.AuctionId,
		Bidder:    bidderA,
		Amount:    bid101,
	})
	s.Equal(domain.ErrInvalidEthAmount, err)

	// attached value differs from the declared amount
	_, err = s.im.PlaceBid(mockCtx, auction.PlaceBidPayload{
		ChainId:       chainId,
		AuctionId:     a.AuctionId,
		Bidder:        bidderA,
		Amount:        bid101,
		AttachedValue: reserve10,
	})
	s.Equal(domain.ErrInvalidEthAmount, err)
}

func (s *auctionSuite) TestPlaceBidPayTokenPullsEscrow() {
	a := activeAuction(time.Hour)
	a.Currency = daiAddr
	a.WinningBid = &auction.Bid{Bidder: bidderA, Amount: reserve10, BidTime: time.Now().Add(-time.Minute)}
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.paramsRepo.On("FindOne", mockCtx, chainId).Return(auction.DefaultParams(chainId), nil).Once()
	s.chainClient.On("Signer").Return(custodianAddr)
	s.erc20.
		On("TransferFrom", mockCtx, int32(chainId), string(daiAddr), string(bidderB), custodianAddr.Hex(), bigFromString(bid101)).
		Return("0xescrowtx", nil).Once()
	s.expectTransaction()
	s.auctionRepo.On("Update", mockCtx, id, mock.Anything).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.MatchedBy(func(act *activity.Activity) bool {
		// the feed entry points at the escrow pull
		return act.Type == activity.ActivityTypePlaceBid && act.TxHash == "0xescrowtx"
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.MatchedBy(func(act *activity.Activity) bool {
		return act.Type == activity.ActivityTypeBidRefunded && act.Account == bidderA
	})).Return(nil).Once()
	s.erc20.
		On("Transfer", mockCtx, int32(chainId), string(daiAddr), string(bidderA), bigFromString(reserve10)).
		Return("0xrefundtx", nil).Once()
	s.notifier.On("NotifyNewBid", mockCtx, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := s.im.PlaceBid(mockCtx, auction.PlaceBidPayload{
		ChainId:   chainId,
		AuctionId: a.AuctionId,
		Bidder:    bidderB,
		Amount:    bid101,
	})
	s.NoError(err)
}

func (s *auctionSuite) TestPlaceBidPayTokenRejectsAttachedValue() {
	a := activeAuction(time.Hour)
	a.Currency = daiAddr
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.paramsRepo.On("FindOne", mockCtx, chainId).Return(auction.DefaultParams(chainId), nil).Once()

	_, err := s.im.PlaceBid(mockCtx, auction.PlaceBidPayload{
		ChainId:       chainId,
		AuctionId:     a.AuctionId,
		Bidder:        bidderA,
		Amount:        bid101,
		AttachedValue: "5",
	})
	s.Equal(domain.ErrInvalidEthAmount, err)
}

func (s *auctionSuite) TestPlaceBidSoftCloseExtends() {
	a := activeAuction(5 * time.Minute)
	end := a.EndTime
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.paramsRepo.On("FindOne", mockCtx, chainId).Return(auction.DefaultParams(chainId), nil).Once()
	s.expectTransaction()
	s.auctionRepo.On("Update", mockCtx, id, mock.MatchedBy(func(p auction.Patchable) bool {
		// the extension grows from the pre-bid deadline
		return p.EndTime != nil && p.EndTime.Equal(end.Add(10*time.Minute))
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil).Once()
	s.notifier.On("NotifyNewBid", mockCtx, mock.Anything, mock.Anything).Return(nil).Once()

	res, err := s.im.PlaceBid(mockCtx, auction.PlaceBidPayload{
		ChainId:       chainId,
		AuctionId:     a.AuctionId,
		Bidder:        bidderA,
		Amount:        reserve10,
		AttachedValue: reserve10,
	})
	s.NoError(err)
	s.True(res.EndTime.Equal(end.Add(10 * time.Minute)))
}

func (s *auctionSuite) TestPlaceBidOutsideSoftCloseKeepsDeadline() {
	a := activeAuction(time.Hour)
	end := a.EndTime
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.paramsRepo.On("FindOne", mockCtx, chainId).Return(auction.DefaultParams(chainId), nil).Once()
	s.expectTransaction()
	s.auctionRepo.On("Update", mockCtx, id, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.EndTime == nil
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.Anything).Return(nil).Once()
	s.notifier.On("NotifyNewBid", mockCtx, mock.Anything, mock.Anything).Return(nil).Once()

	res, err := s.im.PlaceBid(mockCtx, auction.PlaceBidPayload{
		ChainId:       chainId,
		AuctionId:     a.AuctionId,
		Bidder:        bidderA,
		Amount:        reserve10,
		AttachedValue: reserve10,
	})
	s.NoError(err)
	s.True(res.EndTime.Equal(end))
}

func (s *auctionSuite) TestPlaceBidEnded() {
	a := activeAuction(-time.Minute)
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()

	_, err := s.im.PlaceBid(mockCtx, auction.PlaceBidPayload{
		ChainId:       chainId,
		AuctionId:     a.AuctionId,
		Bidder:        bidderA,
		Amount:        reserve10,
		AttachedValue: reserve10,
	})
	s.Equal(domain.ErrAuctionEnded, err)
}

func (s *auctionSuite) TestPlaceBidUnknownOrTerminalAuction() {
	missing := auction.Id{ChainId: chainId, AuctionId: 404}
	s.auctionRepo.On("FindOne", mockCtx, missing).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.PlaceBid(mockCtx, auction.PlaceBidPayload{
		ChainId:       chainId,
		AuctionId:     404,
		Bidder:        bidderA,
		Amount:        reserve10,
		AttachedValue: reserve10,
	})
	s.Equal(domain.ErrInvalidAuctionId, err)

	settled := activeAuction(time.Hour)
	settled.Status = auction.StatusSettled
	s.auctionRepo.On("FindOne", mockCtx, settled.ToId()).Return(settled, nil).Once()

	_, err = s.im.PlaceBid(mockCtx, auction.PlaceBidPayload{
		ChainId:       chainId,
		AuctionId:     settled.AuctionId,
		Bidder:        bidderA,
		Amount:        reserve10,
		AttachedValue: reserve10,
	})
	s.Equal(domain.ErrInvalidAuctionId, err)
}

func (s *auctionSuite) TestCancelAuction() {
	a := activeAuction(time.Hour)
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.expectTransaction()
	s.auctionRepo.On("Update", mockCtx, id, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.Status != nil && *p.Status == auction.StatusCancelled
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.MatchedBy(func(act *activity.Activity) bool {
		return act.Type == activity.ActivityTypeCancelAuction && act.Account == operator
	})).Return(nil).Once()
	s.chainClient.On("Signer").Return(custodianAddr)
	s.erc721.
		On("TransferFrom", mockCtx, int32(chainId), string(nftAddr), custodianAddr.Hex(), string(seller), big.NewInt(42)).
		Return("0xreturntx", nil).Once()
	s.notifier.On("NotifyAuctionCancelled", mockCtx, mock.Anything).Return(nil).Once()

	err := s.im.CancelAuction(mockCtx, id, operator)
	s.NoError(err)
}

func (s *auctionSuite) TestCancelAuctionWithBidRejected() {
	a := activeAuction(time.Hour)
	a.WinningBid = &auction.Bid{Bidder: bidderA, Amount: reserve10, BidTime: time.Now().Add(-time.Minute)}
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()

	err := s.im.CancelAuction(mockCtx, id, operator)
	s.Equal(domain.ErrBidsAlreadyMade, err)
}

func (s *auctionSuite) TestSettleAuctionStillActive() {
	a := activeAuction(time.Hour)
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()

	err := s.im.SettleAuction(mockCtx, id, bidderA)
	s.Equal(domain.ErrAuctionStillActive, err)
}

func (s *auctionSuite) TestSettleAuctionNoBidReturnsAsset() {
	a := activeAuction(-time.Minute)
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.expectTransaction()
	s.auctionRepo.On("Update", mockCtx, id, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.Status != nil && *p.Status == auction.StatusSettled
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.MatchedBy(func(act *activity.Activity) bool {
		return act.Type == activity.ActivityTypeResultAuction &&
			act.Account == seller &&
			act.To == domain.Address("") &&
			act.Price == ""
	})).Return(nil).Once()
	s.chainClient.On("Signer").Return(custodianAddr)
	s.erc721.
		On("TransferFrom", mockCtx, int32(chainId), string(nftAddr), custodianAddr.Hex(), string(seller), big.NewInt(42)).
		Return("0xreturntx", nil).Once()
	s.notifier.On("NotifyAuctionSettled", mockCtx, mock.Anything).Return(nil).Once()

	err := s.im.SettleAuction(mockCtx, id, bidderA)
	s.NoError(err)
}

func (s *auctionSuite) TestSettleAuctionPaysSellerAndDeliversAsset() {
	a := activeAuction(-time.Minute)
	a.WinningBid = &auction.Bid{Bidder: bidderA, Amount: bid101, BidTime: time.Now().Add(-time.Hour)}
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	s.expectTransaction()
	s.auctionRepo.On("Update", mockCtx, id, mock.MatchedBy(func(p auction.Patchable) bool {
		return p.Status != nil && *p.Status == auction.StatusSettled
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.MatchedBy(func(act *activity.Activity) bool {
		return act.Type == activity.ActivityTypeResultAuction &&
			act.Account == seller &&
			act.To == bidderA &&
			act.Price == bid101
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mockCtx, mock.MatchedBy(func(act *activity.Activity) bool {
		return act.Type == activity.ActivityTypeWonAuction &&
			act.Account == bidderA &&
			act.To == seller &&
			act.Price == bid101
	})).Return(nil).Once()
	s.chainClient.
		On("TransferValue", mockCtx, int32(chainId), common.HexToAddress(string(seller)), bigFromString(bid101)).
		Return("0xpayouttx", nil).Once()
	s.chainClient.On("Signer").Return(custodianAddr)
	s.erc721.
		On("TransferFrom", mockCtx, int32(chainId), string(nftAddr), custodianAddr.Hex(), string(bidderA), big.NewInt(42)).
		Return("0xdeliverytx", nil).Once()
	s.notifier.On("NotifyAuctionSettled", mockCtx, mock.Anything).Return(nil).Once()

	err := s.im.SettleAuction(mockCtx, id, bidderB)
	s.NoError(err)
}

func (s *auctionSuite) TestSettleAuctionTwiceRejected() {
	a := activeAuction(-time.Minute)
	a.Status = auction.StatusSettled
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()

	err := s.im.SettleAuction(mockCtx, id, bidderA)
	s.Equal(domain.ErrInvalidAuctionId, err)
}

func (s *auctionSuite) TestGetAuction() {
	a := activeAuction(time.Hour)
	id := a.ToId()

	s.auctionRepo.On("FindOne", mockCtx, id).Return(a, nil).Once()
	res, err := s.im.GetAuction(mockCtx, id)
	s.NoError(err)
	s.Equal(a, res)

	missing := auction.Id{ChainId: chainId, AuctionId: 404}
	s.auctionRepo.On("FindOne", mockCtx, missing).Return(nil, domain.ErrNotFound).Once()
	_, err = s.im.GetAuction(mockCtx, missing)
	s.Equal(domain.ErrNotFound, err)
}

func (s *auctionSuite) TestAuctionsCreated() {
	s.auctionRepo.On("AuctionsCreated", mockCtx, chainId).Return(int64(12), nil).Once()

	n, err := s.im.AuctionsCreated(mockCtx, chainId)
	s.NoError(err)
	s.Equal(int64(12), n)
}
