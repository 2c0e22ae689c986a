// Package credstore implements the client's durable key-value credential
// store: the session token, the serialized identity, and locally confirmed
// purchases live here across process restarts.
package credstore

import "context"

// Store is the persistence contract. Get returns (nil, nil) when the key is
// absent; errors are classified as common.ErrStorageUnavailable and are
// always recoverable by treating the value as absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
