package usecase

import (
	"context"
	"slices"

	"todo-list/internal/model"
	"todo-list/internal/todo"
)

// Update replaces text and date of an existing task, keeping its id and position.
func (uc *implUseCase) Update(ctx context.Context, input todo.UpdateInput) (model.Task, error) {
	text, date, err := uc.validate(input.Text, input.Date)
	if err != nil {
		return model.Task{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(input.ID)
	if i < 0 {
		return model.Task{}, todo.ErrNotFound
	}

	next := slices.Clone(uc.tasks)
	next[i].Text = text
	next[i].Date = date

	if err := uc.commit(ctx, next); err != nil {
		uc.l.Errorf(ctx, "uc.Update commit: %v", err)
		return model.Task{}, err
	}

	return next[i], nil
}

// Remove deletes the task with id if present.
// An unknown id changes nothing, so the slot is left untouched.
func (uc *implUseCase) Remove(ctx context.Context, id int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		uc.l.Debugf(ctx, "uc.Remove: task %d not found, nothing to do", id)
		return nil
	}

	next := slices.Delete(slices.Clone(uc.tasks), i, i+1)
	if err := uc.commit(ctx, next); err != nil {
		uc.l.Errorf(ctx, "uc.Remove commit: %v", err)
		return err
	}
	return nil
}
