// Package ctx couples a context.Context with the request scoped
// logger so call sites carry cancellation and log fields as one
// value. Anything attached through WithValue shows up both in
// Context.Value lookups and in every log line written downstream.
package ctx

import (
	"context"
	"time"

	"github.com/x-xyz/auctionhouse/base/log"
)

// Ctx satisfies context.Context and log.Logger at once.
type Ctx struct {
	context.Context
	log.Logger
}

// Background wraps context.Background with the root logger.
func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// WithValue attaches key/val to the context and to the log fields.
func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.WithField(key, val),
	}
}

// WithValues attaches every pair in kvs, see WithValue.
func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// WithCancel mirrors context.WithCancel, keeping the logger.
func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	inner, cancel := context.WithCancel(parent)
	return Ctx{
		Context: inner,
		Logger:  parent.Logger,
	}, cancel
}

// WithTimeout mirrors context.WithTimeout, keeping the logger.
func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	inner, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: inner,
		Logger:  parent.Logger,
	}, cancel
}
