package repository

import (
	"context"

	"todo-list/internal/model"
)

// Repository persists the whole task collection as one unit.
type Repository interface {
	// LoadTasks returns the saved collection. An absent slot yields an empty
	// slice and no error; unreadable content yields ErrMalformed.
	LoadTasks(ctx context.Context) ([]model.Task, error)

	// SaveTasks overwrites the slot with the given collection.
	SaveTasks(ctx context.Context, tasks []model.Task) error
}
