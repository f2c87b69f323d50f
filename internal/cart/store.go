package cart

import (
	"context"
	"errors"
)

// Store persists the full line list for a cart key. Every mutation rewrites
// the whole list; there is no incremental persistence.
type Store interface {
	Load(ctx context.Context, key string) ([]Line, error)
	Save(ctx context.Context, key string, lines []Line) error
	Delete(ctx context.Context, key string) error
}

// ErrNotFound is returned by Load when no cart has been persisted under the
// given key. Callers treat it as an empty cart.
var ErrNotFound = errors.New("cart not found")
