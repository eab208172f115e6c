package usecase

import (
	"context"
	"errors"

	"todo-list/internal/model"
	"todo-list/internal/todo/repository"
)

// Initialize replaces the in-memory collection with the saved one.
func (uc *implUseCase) Initialize(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	tasks, err := uc.repo.LoadTasks(ctx)
	switch {
	case errors.Is(err, repository.ErrMalformed):
		uc.l.Warnf(ctx, "uc.Initialize: ignoring saved tasks: %v", err)
		tasks = nil
	case err != nil:
		uc.l.Errorf(ctx, "uc.Initialize LoadTasks: %v", err)
		tasks = nil
	}

	uc.tasks = make([]model.Task, 0, len(tasks))
	seen := make(map[int64]struct{}, len(tasks))
	for _, t := range tasks {
		if _, _, err := uc.validate(t.Text, t.Date); err != nil {
			uc.l.Warnf(ctx, "uc.Initialize: dropping saved task id %d: %v", t.ID, err)
			continue
		}
		if _, dup := seen[t.ID]; dup {
			uc.l.Warnf(ctx, "uc.Initialize: dropping duplicate task id %d", t.ID)
			continue
		}
		seen[t.ID] = struct{}{}
		uc.ids.observe(t.ID)
		uc.tasks = append(uc.tasks, t)
	}

	uc.l.Infof(ctx, "uc.Initialize: loaded %d tasks", len(uc.tasks))
}
