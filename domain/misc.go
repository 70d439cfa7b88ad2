package domain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

// TokenType classifies an asset by the transfer interface it declares.
type TokenType int

const (
	TokenType721  TokenType = 721
	TokenType1155 TokenType = 1155
)

type ChainId int32

type Address string

// EmptyAddress doubles as the native-currency sentinel for auction payments.
const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsNative reports whether the address is the native-currency sentinel.
func (a Address) IsNative() bool {
	return a.ToLowerStr() == string(EmptyAddress)
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// ToBigInt parses the decimal token id. Ids are stored as strings because
// uint256 does not fit any Go integer.
func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(string(i), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid id %s", i)
	}
	return id, nil
}

// ToBigInt parses decimal base-unit amounts, rejecting anything that is
// not a plain integer.
func ToBigInt(nums []string) ([]*big.Int, error) {
	bns := make([]*big.Int, 0, len(nums))
	for _, n := range nums {
		bn, ok := new(big.Int).SetString(n, 10)
		if !ok {
			return nil, ErrInvalidNumberFormat
		}
		bns = append(bns, bn)
	}
	return bns, nil
}

// NativeDecimals is the decimals of every supported chain's gas coin.
const NativeDecimals = int32(18)

// ChainIdNativeSymbolMap names the gas coin per supported chain for
// notification rendering.
var ChainIdNativeSymbolMap = map[ChainId]string{
	// eth
	1: "ETH",
	// ropsten
	3: "ETH",
	// goerli
	5: "ETH",
	// bsc
	56: "BNB",
	// bsc testnet
	97: "BNB",
	// fantom
	250: "FTM",
}
