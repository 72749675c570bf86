package docstore

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a document id does not exist in a collection
	ErrNotFound = errors.New("document not found")
)

// Document is one stored record: an opaque id plus loosely-typed payload.
// Payload shapes are not validated here; consumers normalize on read.
type Document struct {
	ID        string
	Data      map[string]interface{}
	CreatedAt time.Time
}

// QueryOptions controls ordering and truncation of equality queries
type QueryOptions struct {
	OrderByCreatedDesc bool
	Limit              int
}

// Store is the collection-oriented document storage contract.
// Updates are partial merges; unknown fields in stored payloads survive them.
type Store interface {
	Insert(ctx context.Context, collection string, data map[string]interface{}) (string, error)
	Get(ctx context.Context, collection, id string) (map[string]interface{}, error)
	GetAll(ctx context.Context, collection string) ([]Document, error)
	Query(ctx context.Context, collection, field string, value interface{}, opts QueryOptions) ([]Document, error)
	Update(ctx context.Context, collection, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
}
