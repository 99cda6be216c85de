// Package session persists the client's authenticated identity: an opaque
// bearer token plus the cached user record, stored as two independent keys
// in a local sqlite database. The store is process-wide and unlocked; the
// last writer wins.
package session

import "context"

// Repository is the raw key-value surface under the typed Store. Get
// returns (nil, nil) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
