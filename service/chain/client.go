package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/params"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/log"
)

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	ErrNoSigner         = errors.New("no signer configured")
	ErrTxReverted       = errors.New("transaction reverted")
)

type ClientCfg struct {
	RpcUrls        map[int32]string
	ArchiveRpcUrls map[int32]string
	// SignerKey is the hex encoded private key of the custodial wallet.
	// Leave empty for read-only deployments, Transact and TransferValue
	// will return ErrNoSigner.
	SignerKey string
}

type Client interface {
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	Transact(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) (string, error)
	TransferValue(bCtx.Ctx, int32, common.Address, *big.Int) (string, error)
	Signer() common.Address
}

type clientImpl struct {
	clients        map[int32]*ethclient.Client
	archiveClients map[int32]*ethclient.Client
	signerKey      *ecdsa.PrivateKey
	signerAddress  common.Address
	// serializes nonce allocation across concurrent sends
	txMu sync.Mutex
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	clients := make(map[int32]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}
	archiveClients := make(map[int32]*ethclient.Client)
	for chainId, url := range cfg.ArchiveRpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		archiveClients[chainId] = client
	}
	impl := &clientImpl{
		clients:        clients,
		archiveClients: archiveClients,
	}
	if cfg.SignerKey != "" {
		key, err := crypto.HexToECDSA(cfg.SignerKey)
		if err != nil {
			ctx.WithField("err", err).Error("failed to parse signer key")
			return nil, err
		}
		impl.signerKey = key
		impl.signerAddress = crypto.PubkeyToAddress(key.PublicKey)
	}
	return impl, anyerr
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	var (
		client *ethclient.Client
		ok     bool
	)
	if blk == nil {
		client, ok = c.clients[chainId]
	} else {
		client, ok = c.archiveClients[chainId]
	}
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId int32, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (string, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return "", ErrUnsupportedChain
	}
	if c.signerKey == nil {
		return "", ErrNoSigner
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return "", err
	}
	return c.send(ctx, chainId, client, addr, value, data)
}

func (c *clientImpl) TransferValue(ctx bCtx.Ctx, chainId int32, addr common.Address, value *big.Int) (string, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return "", ErrUnsupportedChain
	}
	if c.signerKey == nil {
		return "", ErrNoSigner
	}
	return c.send(ctx, chainId, client, addr, value, nil)
}

func (c *clientImpl) Signer() common.Address {
	return c.signerAddress
}

func (c *clientImpl) send(ctx bCtx.Ctx, chainId int32, client *ethclient.Client, addr common.Address, value *big.Int, data []byte) (string, error) {
	c.txMu.Lock()
	defer c.txMu.Unlock()

	nonce, err := client.PendingNonceAt(ctx, c.signerAddress)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return "", err
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return "", err
	}
	gasLimit := params.TxGas
	if len(data) > 0 {
		msg := ethereum.CallMsg{
			From:  c.signerAddress,
			To:    &addr,
			Value: value,
			Data:  data,
		}
		gasLimit, err = client.EstimateGas(ctx, msg)
		if err != nil {
			ctx.WithField("err", err).Error("client.EstimateGas failed")
			return "", err
		}
	}
	tx := types.NewTransaction(nonce, addr, value, gasLimit, gasPrice, data)
	signer := types.LatestSignerForChainID(new(big.Int).SetInt64(int64(chainId)))
	signedTx, err := types.SignTx(tx, signer, c.signerKey)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return "", err
	}
	if err := client.SendTransaction(ctx, signedTx); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"to":   addr,
			"hash": signedTx.Hash().Hex(),
		}).Error("client.SendTransaction failed")
		return "", err
	}
	receipt, err := bind.WaitMined(ctx, client, signedTx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"hash": signedTx.Hash().Hex(),
		}).Error("bind.WaitMined failed")
		return "", err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		ctx.WithField("hash", signedTx.Hash().Hex()).Error("transaction reverted")
		return signedTx.Hash().Hex(), ErrTxReverted
	}
	return signedTx.Hash().Hex(), nil
}
