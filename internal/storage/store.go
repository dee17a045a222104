package storage

import "context"

// Store is the key-value backing store the engine persists into. One key
// holds the entire serialized game collection; there is no row-level
// access.
type Store interface {
	// Read returns the value stored under key. ok is false when the key
	// has never been written.
	Read(ctx context.Context, key string) (value string, ok bool, err error)

	// Write replaces the value stored under key.
	Write(ctx context.Context, key, value string) error
}
