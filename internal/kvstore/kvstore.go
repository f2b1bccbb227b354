// Package kvstore provides the durable key-value substrate both the local
// storage backend and the session manager persist into. Values are opaque
// byte strings; callers own serialization.
package kvstore

import "context"

// Store is a durable string-keyed byte store.
//
// Get returns nil (and a nil error) for an absent key, mirroring the
// "optional value" shape of the substrate contract.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
