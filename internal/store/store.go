package store

import (
	"context"
	"errors"
)

// Document is a schemaless record as held by the store, including the
// native identifier and timestamp fields not exposed verbatim to clients.
type Document = map[string]any

var (
	// ErrNotFound is returned by FindByID when no document matches.
	ErrNotFound = errors.New("store: document not found")

	// ErrUnavailable is returned by write paths when no store is
	// configured. Read paths degrade to empty results instead.
	ErrUnavailable = errors.New("store: not configured")

	// ErrInconsistent marks a store that returned an identifier on insert
	// but cannot find the document under it. This is an invariant
	// violation, never a client error.
	ErrInconsistent = errors.New("store: inserted document not found")
)

// Gateway is the capability surface the policies depend on: a schemaless
// store addressing documents by collection name and an opaque,
// store-assigned identifier. A nil Gateway means "store not configured";
// callers degrade rather than fail.
type Gateway interface {
	// Insert stores doc and returns the native identifier the store
	// assigned to it.
	Insert(ctx context.Context, collection string, doc Document) (any, error)

	// FindByID returns the document stored under the native identifier,
	// or ErrNotFound.
	FindByID(ctx context.Context, collection string, id any) (Document, error)

	// FindAll returns every document in the collection, in the store's
	// native retrieval order.
	FindAll(ctx context.Context, collection string) ([]Document, error)

	// Count returns the number of documents in the collection.
	Count(ctx context.Context, collection string) (int64, error)

	// Collections lists the collection names present in the database.
	Collections(ctx context.Context) ([]string, error)
}
