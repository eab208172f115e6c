package kvslot

import (
	"fmt"

	"todo-list/internal/todo/repository"
	"todo-list/pkg/kvstore"
	"todo-list/pkg/log"
)

// DefaultKey is the slot the collection lives under.
const DefaultKey = "tasks"

type implRepository struct {
	kv  kvstore.Store
	key string
	l   log.Logger
}

// New creates a Repository that keeps the collection under key in kv.
func New(kv kvstore.Store, key string, l log.Logger) repository.Repository {
	if kv == nil {
		panic("todo/repository/kvslot: kv store is required")
	}
	if key == "" {
		key = DefaultKey
	}
	return &implRepository{kv: kv, key: key, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/kvslot.%s", method)
}
