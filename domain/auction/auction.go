package auction

import (
	"math/big"
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusSettled   Status = "settled"
)

// Bid is the leading bid escrowed by the engine. Amount is an integer
// amount of base units in decimal string format.
type Bid struct {
	Bidder  domain.Address `json:"bidder" bson:"bidder"`
	Amount  string         `json:"amount" bson:"amount"`
	BidTime time.Time      `json:"bidTime" bson:"bidTime"`
}

func (b *Bid) AmountBigInt() (*big.Int, error) {
	ns, err := domain.ToBigInt([]string{b.Amount})
	if err != nil {
		return nil, err
	}
	return ns[0], nil
}

type Auction struct {
	ChainId         domain.ChainId `json:"chainId" bson:"chainId"`
	AuctionId       int64          `json:"auctionId" bson:"auctionId"`
	Seller          domain.Address `json:"seller" bson:"seller"`
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
	Quantity        int64          `json:"quantity" bson:"quantity"`
	// TokenType is probed from the asset contract at creation and fixes
	// which custody variant moves the asset afterwards.
	TokenType domain.TokenType `json:"tokenType" bson:"tokenType"`
	// Currency is domain.EmptyAddress for native payments, otherwise a
	// registered pay token address.
	Currency     domain.Address `json:"currency" bson:"currency"`
	ReservePrice string         `json:"reservePrice" bson:"reservePrice"`
	EndTime      time.Time      `json:"endTime" bson:"endTime"`
	WinningBid   *Bid           `json:"winningBid,omitempty" bson:"winningBid,omitempty"`
	Status       Status         `json:"status" bson:"status"`
	CreatedAt    time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (a *Auction) ToId() Id {
	return Id{
		ChainId:   a.ChainId,
		AuctionId: a.AuctionId,
	}
}

func (a *Auction) LowerCase() {
	a.Seller = a.Seller.ToLower()
	a.ContractAddress = a.ContractAddress.ToLower()
	a.Currency = a.Currency.ToLower()
	if a.WinningBid != nil {
		a.WinningBid.Bidder = a.WinningBid.Bidder.ToLower()
	}
}

func (a *Auction) HasBid() bool {
	return a.WinningBid != nil && !a.WinningBid.Bidder.IsEmpty()
}

func (a *Auction) ReservePriceBigInt() (*big.Int, error) {
	ns, err := domain.ToBigInt([]string{a.ReservePrice})
	if err != nil {
		return nil, err
	}
	return ns[0], nil
}

type Id struct {
	ChainId   domain.ChainId `json:"chainId" bson:"chainId" param:"chainId"`
	AuctionId int64          `json:"auctionId" bson:"auctionId" param:"auctionId"`
}

type Patchable struct {
	EndTime    *time.Time `bson:"endTime,omitempty"`
	WinningBid *Bid       `bson:"winningBid,omitempty"`
	Status     *Status    `bson:"status,omitempty"`
	UpdatedAt  *time.Time `bson:"updatedAt,omitempty"`
}

type CreateAuctionPayload struct {
	ChainId domain.ChainId `json:"chainId"`
	// Seller is filled from the auth context, not the request body.
	Seller          domain.Address `json:"-"`
	ContractAddress domain.Address `json:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId"`
	Quantity        int64          `json:"quantity"`
	Currency        domain.Address `json:"currency"`
	ReservePrice    string         `json:"reservePrice"`
	EndTime         time.Time      `json:"endTime"`
}

type PlaceBidPayload struct {
	ChainId   domain.ChainId `json:"chainId"`
	AuctionId int64          `json:"auctionId"`
	Bidder    domain.Address `json:"bidder"`
	Amount    string         `json:"amount"`
	// AttachedValue is the native payment accompanying the bid. Must equal
	// Amount for native auctions and be empty for pay token auctions.
	AttachedValue string `json:"attachedValue"`
}

type FindAllOptions struct {
	ChainId         *domain.ChainId
	Status          *Status
	Seller          *domain.Address
	ContractAddress *domain.Address
	EndTimeLT       *time.Time
	Offset          *int32
	Limit           *int32
	Sort            *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithChainId(chainId domain.ChainId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = &seller
		return nil
	}
}

func WithContractAddress(address domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ContractAddress = &address
		return nil
	}
}

func WithEndTimeLT(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.EndTimeLT = &t
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

// Repo is the auction registry: the durable id to record mapping plus the
// per chain creation counter. Records are never deleted.
type Repo interface {
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	FindOne(ctx ctx.Ctx, id Id) (*Auction, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Insert(ctx ctx.Ctx, a *Auction) error
	Update(ctx ctx.Ctx, id Id, patchable Patchable) error
	// NextAuctionId increments the chain's counter and returns the new value.
	NextAuctionId(ctx ctx.Ctx, chainId domain.ChainId) (int64, error)
	// AuctionsCreated returns the counter value without incrementing it.
	AuctionsCreated(ctx ctx.Ctx, chainId domain.ChainId) (int64, error)
}

type UseCase interface {
	CreateAuction(ctx ctx.Ctx, payload CreateAuctionPayload) (*Auction, error)
	PlaceBid(ctx ctx.Ctx, payload PlaceBidPayload) (*Auction, error)
	CancelAuction(ctx ctx.Ctx, id Id, operator domain.Address) error
	SettleAuction(ctx ctx.Ctx, id Id, caller domain.Address) error
	GetAuction(ctx ctx.Ctx, id Id) (*Auction, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	AuctionsCreated(ctx ctx.Ctx, chainId domain.ChainId) (int64, error)
}
