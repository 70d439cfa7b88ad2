// Package contract holds thin typed bindings over chain.Client for the
// token standards the auction flow touches.
package contract

import "github.com/ethereum/go-ethereum/common"

// fourByteId packs a hex-encoded 4 byte id, either an erc165 interface id
// or the erc1271 magic value.
func fourByteId(hex string) [4]byte {
	var id [4]byte
	copy(id[:], common.Hex2Bytes(hex))
	return id
}
