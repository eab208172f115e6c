package kvslot

import (
	"context"
	"fmt"

	"todo-list/internal/model"
	repo "todo-list/internal/todo/repository"
)

func (r *implRepository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LoadTasks"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}
	if !ok {
		return []model.Task{}, nil
	}

	tasks, err := DecodeTasks(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repo.ErrMalformed, err)
	}
	return tasks, nil
}

func (r *implRepository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	raw, err := EncodeTasks(tasks)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("SaveTasks"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	if err := r.kv.Set(ctx, r.key, raw); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveTasks"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	return nil
}
