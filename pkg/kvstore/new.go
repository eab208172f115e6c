package kvstore

import (
	"fmt"

	"todo-list/pkg/log"
)

const (
	BackendFile   = "file"
	BackendMemory = "memory"

	DefaultMemoryCapacity = 128
)

// Config selects and configures a backend.
type Config struct {
	Backend        string
	Path           string // file backend only
	MemoryCapacity int    // memory backend only
	Logger         log.Logger
}

// New opens the backend named by cfg.Backend.
func New(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendFile:
		return NewFileStore(cfg.Path, cfg.Logger)
	case BackendMemory, "":
		return NewMemoryStore(cfg.MemoryCapacity)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
