// Package query is a thin layer over the official mongo driver. It maps
// driver errors to the sentinels below, guards every read with a max query
// time, and can refuse unindexed queries outside production.
package query

import (
	"fmt"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
)

var (
	// ErrNotFound means no document matched the selector.
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey means an insert violated a unique index.
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// ErrCollScan means the query planner chose a collection scan while
	// index checking is on.
	ErrCollScan = fmt.Errorf("COLLSCAN is not allowed")
)

type patchOp struct {
	patchMany bool
}

type PatchOp func(*patchOp)

// WithPatchMany makes Patch update every matched document instead of one.
func WithPatchMany(patchMany bool) PatchOp {
	return func(o *patchOp) {
		o.patchMany = patchMany
	}
}

// Mongo is the storage surface the repositories build on.
type Mongo interface {
	// Insert adds a new document to the table.
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne decodes the first document matching query into result.
	// Returns ErrNotFound when nothing matches.
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count returns the number of documents matching the selector.
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert replaces the document matching the selector, inserting it
	// when absent.
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search decodes matches into results with offset/limit paging. sort
	// names a field, with a leading '-' for descending; an empty sort
	// leaves the order up to mongo.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Remove deletes one matching document. Returns ErrNotFound when
	// nothing matches.
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// RemoveAll deletes every matching document and reports how many went.
	RemoveAll(context ctx.Ctx, table domain.Table, selector interface{}) (removedCnt int64, err error)

	// Patch applies update as a $set to one matched document, or to all
	// of them with WithPatchMany(true). Returns ErrNotFound when nothing
	// matches.
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error

	// Increment atomically adds inc to field and decodes the updated
	// document into result, inserting the document when absent.
	Increment(context ctx.Ctx, table domain.Table, selector, result interface{}, field string, inc interface{}) error

	// RunWithTransaction executes run inside a mongo session transaction.
	// Concurrent transactions are capped to protect the pool.
	RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error
}
