package domain

import "errors"

var (
	// ambient errors, mapped to status codes by base/delivery
	ErrInternalServerError = errors.New("internal server error")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("already exists")
	ErrBadParamInput       = errors.New("invalid request parameter")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")
	ErrInvalidCurrency     = errors.New("invalid currency")

	// auction lifecycle errors
	ErrInvalidDeadline      = errors.New("end time must be in the future")
	ErrInvalidQuantity      = errors.New("invalid quantity for asset kind")
	ErrUnsupportedAssetKind = errors.New("asset supports neither erc721 nor erc1155 interface")
	ErrInvalidAuctionId     = errors.New("invalid auction id")
	ErrAuctionEnded         = errors.New("auction already ended")
	ErrInvalidBidAmount     = errors.New("bid amount below minimum")
	ErrInvalidEthAmount     = errors.New("attached value does not match bid amount")
	ErrBidsAlreadyMade      = errors.New("auction has bids already")
	ErrAuctionStillActive   = errors.New("auction has not ended yet")

	// request errors
	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidSignature = errors.New("invalid signature")
)
