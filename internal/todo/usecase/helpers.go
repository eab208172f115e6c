package usecase

import (
	"context"
	"fmt"
	"strings"

	"todo-list/internal/model"
	"todo-list/internal/todo"
)

// validate trims text and requires both fields to be present.
func (uc *implUseCase) validate(text, date string) (string, string, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.TrimSpace(date) == "" {
		return "", "", todo.ErrValidation
	}
	return text, date, nil
}

// indexOf returns the position of id in the collection, or -1. Caller holds mu.
func (uc *implUseCase) indexOf(id int64) int {
	for i, t := range uc.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// commit writes next to the slot and only then makes it the live collection.
// Caller holds mu.
func (uc *implUseCase) commit(ctx context.Context, next []model.Task) error {
	if err := uc.repo.SaveTasks(ctx, next); err != nil {
		return fmt.Errorf("%w: %v", todo.ErrPersist, err)
	}
	uc.tasks = next
	return nil
}
