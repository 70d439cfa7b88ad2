package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/x-xyz/auctionhouse/base/abi"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/service/chain"
)

type Erc20Contract interface {
	BalanceOf(ctx bCtx.Ctx, chainId int32, addr string, owner string) (*big.Int, error)
	Allowance(ctx bCtx.Ctx, chainId int32, addr string, owner string, spender string) (*big.Int, error)
	Transfer(ctx bCtx.Ctx, chainId int32, addr string, to string, value *big.Int) (string, error)
	TransferFrom(ctx bCtx.Ctx, chainId int32, addr string, from string, to string, value *big.Int) (string, error)
}

type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc20(chainService chain.Client) *Erc20 {
	return &Erc20{
		abi:          baseabi.ERC20TokenABI,
		chainService: chainService,
	}
}

func (e *Erc20) BalanceOf(ctx bCtx.Ctx, chainId int32, addr string, owner string) (*big.Int, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, e.abi, "balanceOf", common.HexToAddress(owner))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) Allowance(ctx bCtx.Ctx, chainId int32, addr string, owner string, spender string) (*big.Int, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), nil, e.abi, "allowance", common.HexToAddress(owner), common.HexToAddress(spender))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

// Transfer moves escrowed funds out of the custody wallet, so it signs and
// sends a real transaction.
func (e *Erc20) Transfer(ctx bCtx.Ctx, chainId int32, addr string, to string, value *big.Int) (string, error) {
	return e.chainService.Transact(ctx, chainId, common.HexToAddress(addr), nil, e.abi, "transfer", common.HexToAddress(to), value)
}

func (e *Erc20) TransferFrom(ctx bCtx.Ctx, chainId int32, addr string, from string, to string, value *big.Int) (string, error) {
	return e.chainService.Transact(ctx, chainId, common.HexToAddress(addr), nil, e.abi, "transferFrom", common.HexToAddress(from), common.HexToAddress(to), value)
}
