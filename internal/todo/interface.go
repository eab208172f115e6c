package todo

import (
	"context"
	"iter"

	"todo-list/internal/model"
)

// UseCase is the task store: an ordered in-memory collection written through
// to a persistence slot on every mutation.
type UseCase interface {
	// Initialize loads the collection from the slot. Missing, malformed or
	// unreadable data leaves the collection empty and is only logged.
	Initialize(ctx context.Context)

	List(ctx context.Context) iter.Seq[model.Task]
	Detail(ctx context.Context, id int64) (model.Task, error)
	Add(ctx context.Context, input AddInput) (model.Task, error)
	Update(ctx context.Context, input UpdateInput) (model.Task, error)

	// Remove is a no-op for unknown ids and leaves the slot untouched.
	Remove(ctx context.Context, id int64) error
}
