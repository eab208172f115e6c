package repository

import "errors"

var (
	ErrMalformed    = errors.New("saved tasks are malformed")
	ErrFailedToLoad = errors.New("failed to load tasks")
	ErrFailedToSave = errors.New("failed to save tasks")
)
