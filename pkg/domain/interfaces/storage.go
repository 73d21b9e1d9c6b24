package interfaces

import (
	"context"
	"errors"
)

var (
	// Storage errors
	ErrStorageKeyNotFound = errors.New("storage key not found")
)

// StorageAdapter is an opaque key-value store. It has no transactions
// across keys.
type StorageAdapter interface {
	// Put stores data with the given key, replacing any existing value
	Put(ctx context.Context, key string, data []byte) error

	// Get retrieves data by the given key. ErrStorageKeyNotFound is returned if absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
