package sweeper

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/auctionhouse/base/backoff"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/domain/auction/mocks"
)

var sweepOperator = domain.Address("0x7125a399b60b1f1d0e4e487d1ba8fea5fca2b22f")

func newTestSweeper(uc *mocks.UseCase, errCh chan error) *Sweeper {
	return New(&SweeperCfg{
		AuctionUC: uc,
		ChainId:   1,
		Operator:  sweepOperator,
		Batch:     10,
		Workers:   2,
		Backoff:   backoff.NewExponential(time.Millisecond, 10*time.Millisecond),
		ErrorCh:   errCh,
	})
}

func TestSweeperSettlesEndedAuctions(t *testing.T) {
	req := require.New(t)
	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	uc := new(mocks.UseCase)
	errCh := make(chan error, 1)

	ended := []*auction.Auction{
		{ChainId: 1, AuctionId: 3, Status: auction.StatusActive},
		{ChainId: 1, AuctionId: 8, Status: auction.StatusActive},
	}

	uc.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(ended, nil).Once()
	uc.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*auction.Auction{}, nil)

	wg := sync.WaitGroup{}
	wg.Add(2)
	settled := func(c bCtx.Ctx, id auction.Id, operator domain.Address) error {
		wg.Done()
		return nil
	}
	uc.On("SettleAuction", mock.Anything, auction.Id{ChainId: 1, AuctionId: 3}, sweepOperator).Return(settled).Once()
	uc.On("SettleAuction", mock.Anything, auction.Id{ChainId: 1, AuctionId: 8}, sweepOperator).Return(settled).Once()

	s := newTestSweeper(uc, errCh)
	s.Start(ctx)
	wg.Wait()
	cancel()
	s.Wait()

	uc.AssertExpectations(t)
	req.Len(errCh, 0)
}

func TestSweeperKeepsGoingWhenSettleFails(t *testing.T) {
	req := require.New(t)
	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	uc := new(mocks.UseCase)
	errCh := make(chan error, 1)

	ended := []*auction.Auction{
		{ChainId: 1, AuctionId: 5, Status: auction.StatusActive},
	}

	// the auction stays in the scan result until a later round settles it
	uc.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(ended, nil).Twice()
	uc.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*auction.Auction{}, nil)

	wg := sync.WaitGroup{}
	wg.Add(2)
	uc.On("SettleAuction", mock.Anything, auction.Id{ChainId: 1, AuctionId: 5}, sweepOperator).
		Return(func(c bCtx.Ctx, id auction.Id, operator domain.Address) error {
			wg.Done()
			return domain.ErrInternalServerError
		}).Once()
	uc.On("SettleAuction", mock.Anything, auction.Id{ChainId: 1, AuctionId: 5}, sweepOperator).
		Return(func(c bCtx.Ctx, id auction.Id, operator domain.Address) error {
			wg.Done()
			return nil
		}).Once()

	s := newTestSweeper(uc, errCh)
	s.Start(ctx)
	wg.Wait()
	cancel()
	s.Wait()

	uc.AssertExpectations(t)
	req.Len(errCh, 0)
}

func TestSweeperTreatsTerminalAuctionAsDone(t *testing.T) {
	req := require.New(t)
	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	uc := new(mocks.UseCase)
	errCh := make(chan error, 1)

	ended := []*auction.Auction{
		{ChainId: 1, AuctionId: 9, Status: auction.StatusActive},
	}

	uc.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(ended, nil).Once()
	uc.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*auction.Auction{}, nil)

	wg := sync.WaitGroup{}
	wg.Add(1)
	// settled through the API between the scan and the worker picking it up
	uc.On("SettleAuction", mock.Anything, auction.Id{ChainId: 1, AuctionId: 9}, sweepOperator).
		Return(func(c bCtx.Ctx, id auction.Id, operator domain.Address) error {
			wg.Done()
			return domain.ErrInvalidAuctionId
		}).Once()

	s := newTestSweeper(uc, errCh)
	s.Start(ctx)
	wg.Wait()
	cancel()
	s.Wait()

	uc.AssertExpectations(t)
	req.Len(errCh, 0)
}

func TestSweeperStopsOnScanError(t *testing.T) {
	req := require.New(t)
	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	defer cancel()
	uc := new(mocks.UseCase)
	errCh := make(chan error, 1)

	uc.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrInternalServerError).Once()

	s := newTestSweeper(uc, errCh)
	s.Start(ctx)
	s.Wait()

	uc.AssertExpectations(t)
	req.Equal(domain.ErrInternalServerError, <-errCh)
}
