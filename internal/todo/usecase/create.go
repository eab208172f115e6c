package usecase

import (
	"context"
	"slices"

	"todo-list/internal/model"
	"todo-list/internal/todo"
)

// Add validates the input, appends a new task and persists the collection.
func (uc *implUseCase) Add(ctx context.Context, input todo.AddInput) (model.Task, error) {
	text, date, err := uc.validate(input.Text, input.Date)
	if err != nil {
		return model.Task{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	task := model.Task{
		ID:   uc.ids.next(),
		Text: text,
		Date: date,
	}

	next := append(slices.Clone(uc.tasks), task)
	if err := uc.commit(ctx, next); err != nil {
		uc.l.Errorf(ctx, "uc.Add commit: %v", err)
		return model.Task{}, err
	}

	return task, nil
}
