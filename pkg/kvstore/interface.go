package kvstore

import "context"

// Store is a string-keyed persistence slot in the spirit of browser localStorage.
// Values are opaque bytes; Set overwrites the whole value.
type Store interface {
	// Get returns the value under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
