package usecase

import (
	"context"
	"iter"
	"slices"

	"todo-list/internal/model"
	"todo-list/internal/todo"
)

// List returns the tasks in insertion order. Each iteration takes a fresh
// snapshot, so the sequence can be ranged over repeatedly and reflects the
// state at the time iteration starts.
func (uc *implUseCase) List(ctx context.Context) iter.Seq[model.Task] {
	return func(yield func(model.Task) bool) {
		uc.mu.Lock()
		snapshot := slices.Clone(uc.tasks)
		uc.mu.Unlock()

		for _, t := range snapshot {
			if !yield(t) {
				return
			}
		}
	}
}

// Detail returns the task with id or todo.ErrNotFound.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return model.Task{}, todo.ErrNotFound
	}
	return uc.tasks[i], nil
}
