package usecase

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/lock"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/activity"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/service/chain"
	"github.com/x-xyz/auctionhouse/service/chain/contract"
	"github.com/x-xyz/auctionhouse/service/query"
	"golang.org/x/xerrors"
)

const bpsDenominator = int64(10000)

type AuctionUseCaseCfg struct {
	AuctionRepo  auction.Repo
	ParamsRepo   auction.ParamsRepo
	ActivityRepo activity.Repo
	PaytokenRepo domain.PayTokenRepo
	Erc721       contract.Erc721Contract
	Erc1155      contract.Erc1155Contract
	Erc20        contract.Erc20Contract
	ChainClient  chain.Client
	Notifier     auction.Notifier
	Mongo        query.Mongo
}

type impl struct {
	auctionRepo  auction.Repo
	paramsRepo   auction.ParamsRepo
	activityRepo activity.Repo
	paytokenRepo domain.PayTokenRepo
	erc721       contract.Erc721Contract
	erc1155      contract.Erc1155Contract
	erc20        contract.Erc20Contract
	chainClient  chain.Client
	notifier     auction.Notifier
	q            query.Mongo
	// serializes operations per auction, see lockKey
	locks *lock.KeyedMutex
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	return &impl{
		auctionRepo:  cfg.AuctionRepo,
		paramsRepo:   cfg.ParamsRepo,
		activityRepo: cfg.ActivityRepo,
		paytokenRepo: cfg.PaytokenRepo,
		erc721:       cfg.Erc721,
		erc1155:      cfg.Erc1155,
		erc20:        cfg.Erc20,
		chainClient:  cfg.ChainClient,
		notifier:     cfg.Notifier,
		q:            cfg.Mongo,
		locks:        lock.NewKeyedMutex(),
	}
}

func lockKey(id auction.Id) string {
	return fmt.Sprintf("auction:%d:%d", id.ChainId, id.AuctionId)
}

func createLockKey(chainId domain.ChainId) string {
	return fmt.Sprintf("auction:create:%d", chainId)
}

func (im *impl) custodian() string {
	return im.chainClient.Signer().Hex()
}

func (im *impl) CreateAuction(ctx bCtx.Ctx, payload auction.CreateAuctionPayload) (*auction.Auction, error) {
	payload.Seller = payload.Seller.ToLower()
	payload.ContractAddress = payload.ContractAddress.ToLower()
	payload.Currency = payload.Currency.ToLower()

	now := time.Now()

	if !payload.EndTime.After(now) {
		return nil, domain.ErrInvalidDeadline
	}

	if _, err := domain.ToBigInt([]string{payload.ReservePrice}); err != nil {
		return nil, err
	}

	tokenType, err := im.probeTokenType(ctx, payload.ChainId, payload.ContractAddress)
	if err != nil {
		return nil, err
	}

	switch tokenType {
	case domain.TokenType721:
		if payload.Quantity != 1 {
			return nil, domain.ErrInvalidQuantity
		}
	case domain.TokenType1155:
		if payload.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	if !payload.Currency.IsNative() {
		payToken, err := im.paytokenRepo.FindOne(ctx, payload.ChainId, payload.Currency)
		if err != nil {
			ctx.WithFields(log.Fields{
				"chainId":  payload.ChainId,
				"currency": payload.Currency,
				"err":      err,
			}).Error("paytokenRepo.FindOne failed")
			return nil, err
		}
		if payToken == nil {
			return nil, domain.ErrInvalidCurrency
		}
	}

	a := &auction.Auction{
		ChainId:         payload.ChainId,
		Seller:          payload.Seller,
		ContractAddress: payload.ContractAddress,
		TokenId:         payload.TokenId,
		Quantity:        payload.Quantity,
		TokenType:       tokenType,
		Currency:        payload.Currency,
		ReservePrice:    payload.ReservePrice,
		EndTime:         payload.EndTime,
		Status:          auction.StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// the asset moves into custody before any record exists. a failed pull
	// aborts with nothing stored.
	custodyTx, err := im.transferAsset(ctx, a, string(payload.Seller), im.custodian())
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId":  payload.ChainId,
			"contract": payload.ContractAddress,
			"tokenId":  payload.TokenId,
			"err":      err,
		}).Error("failed to pull asset into custody")
		return nil, err
	}

	im.locks.Lock(createLockKey(payload.ChainId))
	defer im.locks.Unlock(createLockKey(payload.ChainId))

	run := func(c bCtx.Ctx) error {
		auctionId, err := im.auctionRepo.NextAuctionId(c, payload.ChainId)
		if err != nil {
			return xerrors.Errorf("failed to bump auction counter: %w", err)
		}
		a.AuctionId = auctionId

		if err := im.auctionRepo.Insert(c, a); err != nil {
			return xerrors.Errorf("failed to insert auction: %w", err)
		}

		if err := im.activityRepo.Insert(c, &activity.Activity{
			ChainId:         a.ChainId,
			AuctionId:       a.AuctionId,
			ContractAddress: a.ContractAddress,
			TokenId:         a.TokenId,
			Type:            activity.ActivityTypeCreateAuction,
			Account:         a.Seller,
			Quantity:        fmt.Sprintf("%d", a.Quantity),
			PaymentToken:    a.Currency,
			Time:            now,
			TxHash:          custodyTx,
		}); err != nil {
			return xerrors.Errorf("failed to insert activity: %w", err)
		}

		return nil
	}

	if err := im.q.RunWithTransaction(ctx, run); err != nil {
		// the asset is already custodied, the record has to be restored by hand
		ctx.WithFields(log.Fields{
			"chainId":  payload.ChainId,
			"contract": payload.ContractAddress,
			"tokenId":  payload.TokenId,
			"seller":   payload.Seller,
			"err":      err,
		}).Error("asset custodied but auction not recorded")
		return nil, err
	}

	if err := im.notifier.NotifyAuctionCreated(ctx, a); err != nil {
		ctx.WithField("err", err).Warn("notifier.NotifyAuctionCreated failed")
	}

	return a, nil
}

func (im *impl) PlaceBid(ctx bCtx.Ctx, payload auction.PlaceBidPayload) (*auction.Auction, error) {
	payload.Bidder = payload.Bidder.ToLower()

	id := auction.Id{ChainId: payload.ChainId, AuctionId: payload.AuctionId}

	im.locks.Lock(lockKey(id))
	defer im.locks.Unlock(lockKey(id))

	a, err := im.loadActive(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if !now.Before(a.EndTime) {
		return nil, domain.ErrAuctionEnded
	}

	amounts, err := domain.ToBigInt([]string{payload.Amount})
	if err != nil {
		return nil, err
	}
	amount := amounts[0]

	params, err := im.paramsRepo.FindOne(ctx, payload.ChainId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": payload.ChainId,
			"err":     err,
		}).Error("paramsRepo.FindOne failed")
		return nil, err
	}

	minAcceptable := big.NewInt(0)
	if a.HasBid() {
		prevAmount, err := a.WinningBid.AmountBigInt()
		if err != nil {
			ctx.WithFields(log.Fields{
				"auction": a,
				"err":     err,
			}).Error("stored winning bid amount is malformed")
			return nil, err
		}
		increment := new(big.Int).Div(
			new(big.Int).Mul(prevAmount, big.NewInt(params.MinBidIncrementBps)),
			big.NewInt(bpsDenominator),
		)
		minAcceptable = new(big.Int).Add(prevAmount, increment)
	}

	if amount.Cmp(minAcceptable) < 0 {
		return nil, domain.ErrInvalidBidAmount
	}

	// the reserve is checked on every bid, not only the first
	reserve, err := a.ReservePriceBigInt()
	if err != nil {
		ctx.WithFields(log.Fields{
			"auction": a,
			"err":     err,
		}).Error("stored reserve price is malformed")
		return nil, err
	}
	if amount.Cmp(reserve) < 0 {
		return nil, domain.ErrInvalidBidAmount
	}

	escrowTx, err := im.collectPayment(ctx, a, payload, amount)
	if err != nil {
		return nil, err
	}

	// bids inside the soft close window push the deadline out from the
	// pre-bid end time, so repeated late bids stack full extensions
	var newEndTime *time.Time
	if !now.Before(a.EndTime.Add(-params.SoftClosePeriod())) {
		t := a.EndTime.Add(params.ExtensionPeriod())
		newEndTime = &t
	}

	prevBid := a.WinningBid
	newBid := &auction.Bid{
		Bidder:  payload.Bidder,
		Amount:  payload.Amount,
		BidTime: now,
	}

	run := func(c bCtx.Ctx) error {
		if err := im.auctionRepo.Update(c, id, auction.Patchable{
			WinningBid: newBid,
			EndTime:    newEndTime,
			UpdatedAt:  &now,
		}); err != nil {
			return xerrors.Errorf("failed to update auction: %w", err)
		}

		if err := im.activityRepo.Insert(c, &activity.Activity{
			ChainId:         a.ChainId,
			AuctionId:       a.AuctionId,
			ContractAddress: a.ContractAddress,
			TokenId:         a.TokenId,
			Type:            activity.ActivityTypePlaceBid,
			Account:         payload.Bidder,
			Quantity:        fmt.Sprintf("%d", a.Quantity),
			Price:           payload.Amount,
			PaymentToken:    a.Currency,
			Time:            now,
			TxHash:          escrowTx,
		}); err != nil {
			return xerrors.Errorf("failed to insert activity: %w", err)
		}

		if prevBid != nil {
			if err := im.activityRepo.Insert(c, &activity.Activity{
				ChainId:         a.ChainId,
				AuctionId:       a.AuctionId,
				ContractAddress: a.ContractAddress,
				TokenId:         a.TokenId,
				Type:            activity.ActivityTypeBidRefunded,
				Account:         prevBid.Bidder,
				Quantity:        fmt.Sprintf("%d", a.Quantity),
				Price:           prevBid.Amount,
				PaymentToken:    a.Currency,
				Time:            now,
			}); err != nil {
				return xerrors.Errorf("failed to insert activity: %w", err)
			}
		}

		return nil
	}

	if err := im.q.RunWithTransaction(ctx, run); err != nil {
		// a pay token bid is already escrowed at this point and has to be
		// returned by hand
		ctx.WithFields(log.Fields{
			"id":       id,
			"bidder":   payload.Bidder,
			"amount":   payload.Amount,
			"escrowTx": escrowTx,
			"err":      err,
		}).Error("failed to record bid")
		return nil, err
	}

	// the record leads, the refund follows. a previous bidder never holds
	// the winning slot and the escrow at the same time.
	if prevBid != nil {
		prevAmount, _ := prevBid.AmountBigInt()
		if _, err := im.sendPayment(ctx, a, prevBid.Bidder, prevAmount); err != nil {
			ctx.WithFields(log.Fields{
				"id":     id,
				"bidder": prevBid.Bidder,
				"amount": prevBid.Amount,
				"err":    err,
			}).Error("failed to refund previous bidder")
			return nil, err
		}
	}

	a.WinningBid = newBid
	if newEndTime != nil {
		a.EndTime = *newEndTime
	}
	a.UpdatedAt = now

	if err := im.notifier.NotifyNewBid(ctx, a, newBid); err != nil {
		ctx.WithField("err", err).Warn("notifier.NotifyNewBid failed")
	}

	return a, nil
}

func (im *impl) CancelAuction(ctx bCtx.Ctx, id auction.Id, operator domain.Address) error {
	operator = operator.ToLower()

	im.locks.Lock(lockKey(id))
	defer im.locks.Unlock(lockKey(id))

	a, err := im.loadActive(ctx, id)
	if err != nil {
		return err
	}

	if a.HasBid() {
		return domain.ErrBidsAlreadyMade
	}

	now := time.Now()
	status := auction.StatusCancelled

	run := func(c bCtx.Ctx) error {
		if err := im.auctionRepo.Update(c, id, auction.Patchable{
			Status:    &status,
			UpdatedAt: &now,
		}); err != nil {
			return xerrors.Errorf("failed to update auction: %w", err)
		}

		if err := im.activityRepo.Insert(c, &activity.Activity{
			ChainId:         a.ChainId,
			AuctionId:       a.AuctionId,
			ContractAddress: a.ContractAddress,
			TokenId:         a.TokenId,
			Type:            activity.ActivityTypeCancelAuction,
			Account:         operator,
			Quantity:        fmt.Sprintf("%d", a.Quantity),
			Time:            now,
		}); err != nil {
			return xerrors.Errorf("failed to insert activity: %w", err)
		}

		return nil
	}

	// the terminal status is committed before the asset moves, re-entry
	// fails the active check and cannot release twice
	if err := im.q.RunWithTransaction(ctx, run); err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("failed to cancel auction")
		return err
	}

	if _, err := im.transferAsset(ctx, a, im.custodian(), string(a.Seller)); err != nil {
		ctx.WithFields(log.Fields{
			"id":     id,
			"seller": a.Seller,
			"err":    err,
		}).Error("failed to return asset to seller")
		return err
	}

	a.Status = status
	a.UpdatedAt = now

	if err := im.notifier.NotifyAuctionCancelled(ctx, a); err != nil {
		ctx.WithField("err", err).Warn("notifier.NotifyAuctionCancelled failed")
	}

	return nil
}

func (im *impl) SettleAuction(ctx bCtx.Ctx, id auction.Id, caller domain.Address) error {
	im.locks.Lock(lockKey(id))
	defer im.locks.Unlock(lockKey(id))

	a, err := im.loadActive(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now()

	if now.Before(a.EndTime) {
		return domain.ErrAuctionStillActive
	}

	status := auction.StatusSettled

	run := func(c bCtx.Ctx) error {
		if err := im.auctionRepo.Update(c, id, auction.Patchable{
			Status:    &status,
			UpdatedAt: &now,
		}); err != nil {
			return xerrors.Errorf("failed to update auction: %w", err)
		}

		result := &activity.Activity{
			ChainId:         a.ChainId,
			AuctionId:       a.AuctionId,
			ContractAddress: a.ContractAddress,
			TokenId:         a.TokenId,
			Type:            activity.ActivityTypeResultAuction,
			Account:         a.Seller,
			Quantity:        fmt.Sprintf("%d", a.Quantity),
			PaymentToken:    a.Currency,
			Time:            now,
		}
		if a.HasBid() {
			result.To = a.WinningBid.Bidder
			result.Price = a.WinningBid.Amount
		}
		if err := im.activityRepo.Insert(c, result); err != nil {
			return xerrors.Errorf("failed to insert activity: %w", err)
		}

		if a.HasBid() {
			if err := im.activityRepo.Insert(c, &activity.Activity{
				ChainId:         a.ChainId,
				AuctionId:       a.AuctionId,
				ContractAddress: a.ContractAddress,
				TokenId:         a.TokenId,
				Type:            activity.ActivityTypeWonAuction,
				Account:         a.WinningBid.Bidder,
				To:              a.Seller,
				Quantity:        fmt.Sprintf("%d", a.Quantity),
				Price:           a.WinningBid.Amount,
				PaymentToken:    a.Currency,
				Time:            now,
			}); err != nil {
				return xerrors.Errorf("failed to insert activity: %w", err)
			}
		}

		return nil
	}

	// the terminal status is committed before any transfer, a second settle
	// attempt fails the active check and nothing is released twice
	if err := im.q.RunWithTransaction(ctx, run); err != nil {
		ctx.WithFields(log.Fields{
			"id":     id,
			"caller": caller,
			"err":    err,
		}).Error("failed to settle auction")
		return err
	}

	if !a.HasBid() {
		if _, err := im.transferAsset(ctx, a, im.custodian(), string(a.Seller)); err != nil {
			ctx.WithFields(log.Fields{
				"id":     id,
				"seller": a.Seller,
				"err":    err,
			}).Error("failed to return asset to seller")
			return err
		}
	} else {
		winAmount, err := a.WinningBid.AmountBigInt()
		if err != nil {
			ctx.WithFields(log.Fields{
				"auction": a,
				"err":     err,
			}).Error("stored winning bid amount is malformed")
			return err
		}

		if _, err := im.sendPayment(ctx, a, a.Seller, winAmount); err != nil {
			ctx.WithFields(log.Fields{
				"id":     id,
				"seller": a.Seller,
				"amount": a.WinningBid.Amount,
				"err":    err,
			}).Error("failed to pay seller")
			return err
		}

		if _, err := im.transferAsset(ctx, a, im.custodian(), string(a.WinningBid.Bidder)); err != nil {
			ctx.WithFields(log.Fields{
				"id":     id,
				"winner": a.WinningBid.Bidder,
				"err":    err,
			}).Error("failed to transfer asset to winner")
			return err
		}
	}

	a.Status = status
	a.UpdatedAt = now

	if err := im.notifier.NotifyAuctionSettled(ctx, a); err != nil {
		ctx.WithField("err", err).Warn("notifier.NotifyAuctionSettled failed")
	}

	return nil
}

func (im *impl) GetAuction(ctx bCtx.Ctx, id auction.Id) (*auction.Auction, error) {
	a, err := im.auctionRepo.FindOne(ctx, id)
	if err == domain.ErrNotFound {
		return nil, err
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("auctionRepo.FindOne failed")
		return nil, err
	}
	return a, nil
}

func (im *impl) FindAll(ctx bCtx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	res, err := im.auctionRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("auctionRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) AuctionsCreated(ctx bCtx.Ctx, chainId domain.ChainId) (int64, error) {
	n, err := im.auctionRepo.AuctionsCreated(ctx, chainId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"err":     err,
		}).Error("auctionRepo.AuctionsCreated failed")
		return 0, err
	}
	return n, nil
}

// loadActive maps both a missing record and a terminal one to
// ErrInvalidAuctionId, so callers re-entering through a transfer stop here.
func (im *impl) loadActive(ctx bCtx.Ctx, id auction.Id) (*auction.Auction, error) {
	a, err := im.auctionRepo.FindOne(ctx, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrInvalidAuctionId
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("auctionRepo.FindOne failed")
		return nil, err
	}
	if a.Status != auction.StatusActive {
		return nil, domain.ErrInvalidAuctionId
	}
	return a, nil
}

// probeTokenType classifies the asset contract through its erc165
// declarations. probe failures surface unchanged, except for a chain
// we hold no client for, which is the caller's mistake.
func (im *impl) probeTokenType(ctx bCtx.Ctx, chainId domain.ChainId, contractAddress domain.Address) (domain.TokenType, error) {
	is721, err := im.erc721.Supports721Interface(ctx, int32(chainId), string(contractAddress))
	if err == chain.ErrUnsupportedChain {
		return 0, domain.ErrInvalidChainId
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"chainId":  chainId,
			"contract": contractAddress,
			"err":      err,
		}).Error("erc721.Supports721Interface failed")
		return 0, err
	}
	if is721 {
		return domain.TokenType721, nil
	}

	is1155, err := im.erc1155.Supports1155Interface(ctx, int32(chainId), string(contractAddress))
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId":  chainId,
			"contract": contractAddress,
			"err":      err,
		}).Error("erc1155.Supports1155Interface failed")
		return 0, err
	}
	if is1155 {
		return domain.TokenType1155, nil
	}

	return 0, domain.ErrUnsupportedAssetKind
}

// transferAsset picks the custody variant by token type.
func (im *impl) transferAsset(ctx bCtx.Ctx, a *auction.Auction, from, to string) (string, error) {
	tokenId, err := a.TokenId.ToBigInt()
	if err != nil {
		return "", err
	}

	switch a.TokenType {
	case domain.TokenType721:
		return im.erc721.TransferFrom(ctx, int32(a.ChainId), string(a.ContractAddress), from, to, tokenId)
	case domain.TokenType1155:
		return im.erc1155.SafeTransferFrom(ctx, int32(a.ChainId), string(a.ContractAddress), from, to, tokenId, big.NewInt(a.Quantity))
	default:
		return "", domain.ErrUnsupportedAssetKind
	}
}

// collectPayment escrows the bid and returns the escrow transfer hash.
// native bids arrive as attached value and only need the exact-amount
// check, pay token bids are pulled from the bidder into custody.
func (im *impl) collectPayment(ctx bCtx.Ctx, a *auction.Auction, payload auction.PlaceBidPayload, amount *big.Int) (string, error) {
	attached := big.NewInt(0)
	if payload.AttachedValue != "" {
		values, err := domain.ToBigInt([]string{payload.AttachedValue})
		if err != nil {
			return "", err
		}
		attached = values[0]
	}

	if a.Currency.IsNative() {
		if attached.Cmp(amount) != 0 {
			return "", domain.ErrInvalidEthAmount
		}
		return "", nil
	}

	if attached.Sign() != 0 {
		return "", domain.ErrInvalidEthAmount
	}

	txHash, err := im.erc20.TransferFrom(ctx, int32(a.ChainId), string(a.Currency), string(payload.Bidder), im.custodian(), amount)
	if err != nil {
		ctx.WithFields(log.Fields{
			"id":       a.ToId(),
			"bidder":   payload.Bidder,
			"amount":   payload.Amount,
			"currency": a.Currency,
			"err":      err,
		}).Error("failed to pull bid into escrow")
		return "", err
	}

	return txHash, nil
}

// sendPayment picks the value variant by currency kind. the engine wallet
// is always the source.
func (im *impl) sendPayment(ctx bCtx.Ctx, a *auction.Auction, to domain.Address, amount *big.Int) (string, error) {
	if a.Currency.IsNative() {
		return im.chainClient.TransferValue(ctx, int32(a.ChainId), common.HexToAddress(string(to)), amount)
	}
	return im.erc20.Transfer(ctx, int32(a.ChainId), string(a.Currency), string(to), amount)
}
