// Package query provides an interface for querying mongo db.
// It is a thin wrapper over https://github.com/mongodb/mongo-go-driver,
// see https://godoc.org/go.mongodb.org/mongo-driver/mongo for details.
package query

import (
	"fmt"

	"github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")
)

// Mongo abstracts the mongo layer
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne gets data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count returns counting for matched entries in the table
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Search sorts order by `sort` argument (ex "createdAt" ascending, or "-createdAt" descending).
	// If `sort` is "", the sort action is skipped and MongoDB does not guarantee result order.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Patch patches one entry matching the selector.
	// Returns ErrNotFound if the selector does not match any documents.
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Remove removes an entry from the table.
	// Returns ErrNotFound if the selector does not match any documents.
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error
}
