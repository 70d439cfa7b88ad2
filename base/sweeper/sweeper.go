package sweeper

import (
	"sync"
	"time"

	"github.com/x-xyz/auctionhouse/base/backoff"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/base/metrics"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/auction"
)

var (
	met     metrics.Service
	metOnce sync.Once
)

type SweeperCfg struct {
	AuctionUC auction.UseCase
	ChainId   domain.ChainId
	// Operator is passed as the settling caller on swept auctions.
	Operator domain.Address
	Batch    int
	Workers  int
	Backoff  *backoff.Backoff
	ErrorCh  chan<- error
}

// Sweeper settles ended auctions that nobody settled by hand. Settlement is
// idempotent, so an auction picked up here and settled concurrently through
// the API fails fast on the second attempt and is dropped from the round.
type Sweeper struct {
	auctionUC auction.UseCase
	chainId   domain.ChainId
	operator  domain.Address
	batch     int
	workers   int
	backoff   *backoff.Backoff
	taskCh    chan *auction.Auction
	errorCh   chan<- error
	stoppedCh chan interface{}
}

func New(cfg *SweeperCfg) *Sweeper {
	metOnce.Do(func() {
		met = metrics.New("sweeper")
	})
	return &Sweeper{
		auctionUC: cfg.AuctionUC,
		chainId:   cfg.ChainId,
		operator:  cfg.Operator,
		batch:     cfg.Batch,
		workers:   cfg.Workers,
		backoff:   cfg.Backoff,
		taskCh:    make(chan *auction.Auction, cfg.Batch),
		errorCh:   cfg.ErrorCh,
		stoppedCh: make(chan interface{}),
	}
}

func (s *Sweeper) Start(ctx bCtx.Ctx) {
	go s.loop(ctx)
}

func (s *Sweeper) Wait() {
	<-s.stoppedCh
}

func (s *Sweeper) loop(ctx bCtx.Ctx) {
	workerCtx, cancel := bCtx.WithCancel(ctx)
	workerWg := sync.WaitGroup{}
	resCh := make(chan error, s.workers)

	stop := func() {
		cancel()
		workerWg.Wait()
		close(s.stoppedCh)
	}

	errAndStop := func(err error) {
		s.errorCh <- err
		stop()
	}

	for j := 0; j < s.workers; j++ {
		workerWg.Add(1)
		go func() {
			defer workerWg.Done()
			for {
				select {
				case <-workerCtx.Done():
					return
				case task := <-s.taskCh:
					resCh <- s.settle(workerCtx, task)
				}
			}
		}()
	}

	for {
		select {
		case <-ctx.Done():
			stop()
			return
		default:
		}

		auctions, err := s.auctionUC.FindAll(ctx,
			auction.WithChainId(s.chainId),
			auction.WithStatus(auction.StatusActive),
			auction.WithEndTimeLT(time.Now()),
			auction.WithSort("endTime"),
			auction.WithPagination(0, int32(s.batch)),
		)
		if err != nil {
			errAndStop(err)
			return
		}

		failed := 0
		for _, a := range auctions {
			s.taskCh <- a
		}
		for j := 0; j < len(auctions); j++ {
			select {
			case <-ctx.Done():
				stop()
				return
			case err := <-resCh:
				if err != nil {
					failed++
				}
			}
		}

		if len(auctions) > 0 {
			ctx.WithFields(log.Fields{
				"#auctions": len(auctions),
				"#failed":   failed,
			}).Info("sweep round done")
			s.backoff.Reset()
		}

		if len(auctions) >= s.batch {
			continue
		}

		if err := s.backoff.Backoff(ctx); err != nil {
			stop()
			return
		}
	}
}

// settle reports the error for round accounting but never kills the loop,
// failed auctions stay active and are retried on a later round.
func (s *Sweeper) settle(ctx bCtx.Ctx, a *auction.Auction) error {
	err := s.auctionUC.SettleAuction(ctx, a.ToId(), s.operator)
	if err == domain.ErrInvalidAuctionId {
		// raced with a manual settle or cancel, nothing left to do
		ctx.WithFields(log.Fields{
			"chainId":   a.ChainId,
			"auctionId": a.AuctionId,
		}).Info("auction already terminal")
		return nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"chainId":   a.ChainId,
			"auctionId": a.AuctionId,
			"err":       err,
		}).Warn("settle failed")
		met.BumpSum("settle.failed", 1)
		return err
	}

	met.BumpSum("settled.count", 1)
	return nil
}
