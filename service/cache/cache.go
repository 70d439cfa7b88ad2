// Package cache is a read-through cache facade. A Service owns one
// provider, a key prefix and a ttl, and serializes values as json
// unless told otherwise.
package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
)

var ErrNotFound = errors.New("Cache not found")

// OneTimeGetter loads the value on a miss. It must return a pointer,
// GetByFunc copies the pointee into the caller's container.
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

type Service interface {
	// GetByFunc reads key, falling back to getter and caching
	// whatever it returned.
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl   time.Duration
	Pfx   string
	Cache provider.Provider
	// Serialize and Deserialize default to encoding/json
	Serialize   Serializer
	Deserialize Deserializer
}
