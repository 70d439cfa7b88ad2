package activity

import (
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

type ActivityType string

const (
	ActivityTypeCreateAuction ActivityType = "createAuction"
	ActivityTypePlaceBid      ActivityType = "placeBid"
	ActivityTypeBidRefunded   ActivityType = "bidRefunded"
	ActivityTypeCancelAuction ActivityType = "cancelAuction"
	// resultAuction is recorded against the seller, wonAuction against the
	// winning bidder. A settlement with a winner inserts both.
	ActivityTypeResultAuction ActivityType = "resultAuction"
	ActivityTypeWonAuction    ActivityType = "wonAuction"
)

// Activity is one entry of the permanent per auction event feed.
type Activity struct {
	ChainId         domain.ChainId `json:"chainId" bson:"chainId"`
	AuctionId       int64          `json:"auctionId" bson:"auctionId"`
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
	Type            ActivityType   `json:"type" bson:"type"`
	Account         domain.Address `json:"account" bson:"account"`
	To              domain.Address `json:"to" bson:"to"`
	Quantity        string         `json:"quantity" bson:"quantity"`
	Price           string         `json:"price" bson:"price"`
	PaymentToken    domain.Address `json:"paymentToken" bson:"paymentToken"`
	Time            time.Time      `json:"time" bson:"time"`
	// TxHash anchors the entry to the custody transfer that produced it.
	// Empty when the transfer settles after the record is written, or when
	// no value moved on chain.
	TxHash string `json:"txHash" bson:"txHash"`
}

type findActivityOptions struct {
	ChainId   *domain.ChainId
	AuctionId *int64
	Contract  *domain.Address
	TokenId   *domain.TokenId
	Account   *domain.Address
	Types     []ActivityType
	TimeGTE   *time.Time
	Offset    *int
	Limit     *int
}

type FindActivityOptions func(*findActivityOptions) error

func GetFindActivityOptions(opts ...FindActivityOptions) (*findActivityOptions, error) {
	res := &findActivityOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func WithPagination(offset, limit int) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.Offset = &offset
		opts.Limit = &limit
		return nil
	}
}

func WithAuction(chainId domain.ChainId, auctionId int64) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.ChainId = &chainId
		opts.AuctionId = &auctionId
		return nil
	}
}

func WithToken(chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.ChainId = &chainId
		opts.Contract = contract.ToLowerPtr()
		opts.TokenId = &tokenId
		return nil
	}
}

func WithAccount(account domain.Address) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.Account = account.ToLowerPtr()
		return nil
	}
}

func WithTypes(types ...ActivityType) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.Types = types
		return nil
	}
}

func WithTimeGTE(time time.Time) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.TimeGTE = &time
		return nil
	}
}

type Repo interface {
	Insert(ctx.Ctx, *Activity) error
	FindActivities(c ctx.Ctx, opts ...FindActivityOptions) ([]Activity, error)
	CountActivities(c ctx.Ctx, opts ...FindActivityOptions) (int, error)
}

// SearchResult pairs one page of the feed with the unpaged match count.
type SearchResult struct {
	Items []Activity `json:"items"`
	Count int        `json:"count"`
}

type Usecase interface {
	FindActivities(c ctx.Ctx, opts ...FindActivityOptions) (*SearchResult, error)
}
