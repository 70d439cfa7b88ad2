package contract

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/service/chain/mocks"
)

func TestErc721_Supports721Interface(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	collection := "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D"

	var ifaceId [4]byte
	copy(ifaceId[:], common.Hex2Bytes("80ac58cd"))

	tests := []struct {
		name     string
		unpacked []interface{}
		callErr  error
		want     bool
		wantErr  bool
	}{
		{
			name:     "contract implements the interface",
			unpacked: []interface{}{true},
			want:     true,
		},
		{
			name:     "erc165 contract without the interface",
			unpacked: []interface{}{false},
			want:     false,
		},
		{
			name:    "call reverts on a non contract address",
			callErr: errors.New("execution reverted"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := &mocks.Client{}
			defer cli.AssertExpectations(t)
			cli.On("Call", mock.Anything, int32(1), common.HexToAddress(collection), mock.Anything, mock.Anything, "supportsInterface", ifaceId).
				Return(tt.unpacked, tt.callErr).Once()

			got, err := NewErc721(cli).Supports721Interface(ctx, 1, collection)
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func TestErc721_OwnerOf(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	collection := "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D"
	owner := common.HexToAddress("0x5b0ABb1A6d0F60f7871935e1E932A4C4431eCae6")
	tokenId := big.NewInt(42)

	cli := &mocks.Client{}
	defer cli.AssertExpectations(t)
	cli.On("Call", mock.Anything, int32(1), common.HexToAddress(collection), mock.Anything, mock.Anything, "ownerOf", tokenId).
		Return([]interface{}{owner}, nil).Once()

	got, err := NewErc721(cli).OwnerOf(ctx, 1, collection, tokenId)
	req.NoError(err)
	req.Equal(owner.String(), got)
}

func TestErc721_TransferFrom(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	collection := "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D"
	from := "0x5b0ABb1A6d0F60f7871935e1E932A4C4431eCae6"
	to := "0xAc461fDFc10C71861f37fe42589334e021BaA1ee"
	tokenId := big.NewInt(42)

	cli := &mocks.Client{}
	defer cli.AssertExpectations(t)
	cli.On("Transact", mock.Anything, int32(1), common.HexToAddress(collection), mock.Anything, mock.Anything, "transferFrom", common.HexToAddress(from), common.HexToAddress(to), tokenId).
		Return("0xc0ffee", nil).Once()

	txHash, err := NewErc721(cli).TransferFrom(ctx, 1, collection, from, to, tokenId)
	req.NoError(err)
	req.Equal("0xc0ffee", txHash)
}
