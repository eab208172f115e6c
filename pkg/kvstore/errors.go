package kvstore

import "errors"

var (
	ErrClosed         = errors.New("kvstore: store is closed")
	ErrEmptyKey       = errors.New("kvstore: key is empty")
	ErrUnknownBackend = errors.New("kvstore: unknown backend")
)
