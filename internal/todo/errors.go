package todo

import "errors"

var (
	ErrValidation = errors.New("please enter a task and a due date")
	ErrNotFound   = errors.New("task not found")
	ErrPersist    = errors.New("failed to persist tasks")
)
