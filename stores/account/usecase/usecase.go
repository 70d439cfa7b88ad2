package usecase

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/ethereum"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/base/ptr"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/account"
	"github.com/x-xyz/auctionhouse/service/chain/contract"
)

type AccountUseCaseCfg struct {
	Repo         account.Repo
	SignatureMsg string
	// Erc1271 enables contract wallet sign-in, the signature is checked
	// on-chain when ecrecover does not match.
	Erc1271  contract.Erc1271Contract
	ChainIds []domain.ChainId
}

type impl struct {
	repo         account.Repo
	signatureMsg string
	erc1271      contract.Erc1271Contract
	chainIds     []domain.ChainId
}

func New(cfg *AccountUseCaseCfg) account.Usecase {
	return &impl{
		repo:         cfg.Repo,
		signatureMsg: cfg.SignatureMsg,
		erc1271:      cfg.Erc1271,
		chainIds:     cfg.ChainIds,
	}
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*account.Info, error) {
	a, err := im.repo.Get(c, address)
	if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("repo.Get failed")
		return nil, err
	}
	return a.ToInfo(), nil
}

func (im *impl) Create(c ctx.Ctx, address domain.Address) (*account.Info, error) {
	a, err := im.create(c, address)
	if err != nil {
		return nil, err
	}
	return a.ToInfo(), nil
}

func (im *impl) create(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	now := time.Now()
	acct := &account.Account{
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := im.repo.Insert(c, acct); err != nil {
		c.WithField("err", err).Error("repo.Insert failed")
		return nil, err
	}
	return acct, nil
}

func (im *impl) getOrCreate(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	a, err := im.repo.Get(c, address)
	if err == nil {
		return a, nil
	}
	if err != domain.ErrNotFound {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("repo.Get failed")
		return nil, err
	}
	return im.create(c, address)
}

func (im *impl) GenerateNonce(c ctx.Ctx, address domain.Address) (string, error) {
	c = ctx.WithValue(c, "address", address)
	if _, err := im.getOrCreate(c, address); err != nil {
		return "", err
	}

	nonce := uuid.NewString()
	if err := im.repo.Update(c, address, &account.Updater{
		Nonce:     &nonce,
		UpdatedAt: time.Now(),
	}); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return "", err
	}
	return nonce, nil
}

func (im *impl) makeMessageWithNonce(nonce string) []byte {
	return []byte(fmt.Sprintf(im.signatureMsg, nonce))
}

func (im *impl) ValidateSignature(c ctx.Ctx, address domain.Address, signature string) error {
	c = ctx.WithValues(c, map[string]interface{}{
		"address":   address,
		"signature": signature,
	})

	a, err := im.repo.Get(c, address)
	if err != nil {
		c.WithField("err", err).Error("get address failed")
		return err
	}
	if a.Nonce == "" {
		return account.ErrInvalidNonce
	}

	// the nonce is single use whether or not the signature checks out
	defer im.repo.Update(c, address, &account.Updater{
		Nonce:     ptr.String(""),
		UpdatedAt: time.Now(),
	})

	msg := im.makeMessageWithNonce(a.Nonce)
	valid, err := ethereum.ValidateMsgSignature(msg, signature, string(address))
	if err == nil && valid {
		return nil
	}
	c.WithFields(log.Fields{
		"err":   err,
		"valid": valid,
	}).Warn("validating eoa signature failed")

	if im.erc1271 == nil {
		return account.ErrInvalidSignature
	}

	hash := common.BytesToHash(accounts.TextHash(msg))
	sig := common.FromHex(signature)
	for _, chainId := range im.chainIds {
		valid, err := im.erc1271.IsValidSignature(c, int32(chainId), address.ToLowerStr(), hash, sig)
		if err == nil && valid {
			return nil
		}
	}
	c.WithFields(log.Fields{
		"hash": hash,
		"sig":  signature,
	}).Warn("validating eip1271 signature failed")
	return account.ErrInvalidSignature
}
