package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var ERC1271ABI abi.ABI

var erc1271ABI = `[{"type":"function","name":"isValidSignature","constant":true,"stateMutability":"view","inputs":[{"type":"bytes32","name":"_hash"},{"type":"bytes","name":"_signature"}],"outputs":[{"type":"bytes4","name":"magicValue"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(erc1271ABI))
	if err != nil {
		panic("Failed to parse erc1271 abi")
	}
	ERC1271ABI = _abi
}
