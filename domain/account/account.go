package account

import (
	"errors"
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

var (
	// ErrInvalidNonce means no sign-in challenge is pending for the address.
	ErrInvalidNonce = errors.New("invalid nonce")
	// ErrInvalidSignature means the signature does not recover to the address.
	ErrInvalidSignature = errors.New("invalid signature")
)

// Account is a wallet-keyed user record.
type Account struct {
	Address domain.Address `bson:"address"`
	Alias   string         `bson:"alias"`
	// Nonce is the pending sign-in challenge, empty when no sign-in is in
	// flight. Consumed by the first successful or failed validation.
	Nonce     string    `bson:"nonce"`
	CreatedAt time.Time `bson:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty"`
}

// ToInfo strips the nonce before an account leaves the store layer.
func (a *Account) ToInfo() *Info {
	return &Info{
		Address:     a.Address,
		Alias:       a.Alias,
		CreatedAtMs: a.CreatedAt.UnixMilli(),
		UpdatedAtMs: a.UpdatedAt.UnixMilli(),
	}
}

// Info is the public account shape returned to clients.
type Info struct {
	Address     domain.Address `json:"address"`
	Alias       string         `json:"alias"`
	CreatedAtMs int64          `json:"createdAtMs,omitempty"`
	UpdatedAtMs int64          `json:"updatedAtMs,omitempty"`
}

// Updater carries the patchable fields, nil means leave as is.
type Updater struct {
	Alias     *string   `json:"alias" bson:"alias,omitempty"`
	Nonce     *string   `json:"-" bson:"nonce,omitempty"`
	UpdatedAt time.Time `json:"-" bson:"updatedAt,omitempty"`
}

type Usecase interface {
	Create(c ctx.Ctx, address domain.Address) (*Info, error)
	Get(c ctx.Ctx, address domain.Address) (*Info, error)
	// GenerateNonce issues a fresh sign-in challenge for the address.
	GenerateNonce(c ctx.Ctx, address domain.Address) (string, error)
	// ValidateSignature burns the pending challenge whether or not the
	// signature checks out.
	ValidateSignature(c ctx.Ctx, address domain.Address, signature string) error
}

type Repo interface {
	Get(c ctx.Ctx, address domain.Address) (*Account, error)
	Insert(c ctx.Ctx, account *Account) error
	Update(c ctx.Ctx, address domain.Address, updater *Updater) error
}
