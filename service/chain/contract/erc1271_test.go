package contract

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/service/chain/mocks"
)

func TestErc1271_IsValidSignature(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	wallet := "0xAc461fDFc10C71861f37fe42589334e021BaA1ee"
	hash := common.HexToHash("0x01f6f4c6639ea7f7d4df5425aaefe85113235810e9dd52ccf56297a16191c3ea")
	sig := common.Hex2Bytes("fae5218f")

	var magic [4]byte
	copy(magic[:], common.Hex2Bytes(erc1271MagicValue))

	tests := []struct {
		name     string
		unpacked []interface{}
		callErr  error
		want     bool
		wantErr  bool
	}{
		{
			name:     "wallet accepts",
			unpacked: []interface{}{magic},
			want:     true,
		},
		{
			name:     "wallet rejects",
			unpacked: []interface{}{[4]byte{0xde, 0xad, 0xbe, 0xef}},
			want:     false,
		},
		{
			name:    "call fails",
			callErr: errors.New("execution reverted"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := &mocks.Client{}
			defer cli.AssertExpectations(t)
			cli.On("Call", mock.Anything, int32(1), common.HexToAddress(wallet), mock.Anything, mock.Anything, "isValidSignature", hash, sig).
				Return(tt.unpacked, tt.callErr).Once()

			got, err := NewErc1271(cli).IsValidSignature(ctx, 1, wallet, hash, sig)
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}
