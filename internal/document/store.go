// Package document persists opaque blobs (rendered sanction letters, uploaded
// salary slips) keyed by name.
package document

import (
	"context"
	"errors"
)

// ErrNotFound keeps blob misses consistent across implementations.
var ErrNotFound = errors.New("document not found")

// Store is interface-driven so the filesystem default and the Redis variant
// can be swapped without rewiring callers.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}
