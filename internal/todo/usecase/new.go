package usecase

import (
	"sync"
	"time"

	"todo-list/internal/model"
	"todo-list/internal/todo"
	"todo-list/internal/todo/repository"
	"todo-list/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
// mu serializes every operation so each one runs to completion alone.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	mu    sync.Mutex
	tasks []model.Task
	ids   *idGenerator
}

var _ todo.UseCase = (*implUseCase)(nil)

// New creates a task store over repo. Call Initialize before use.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		tasks: []model.Task{},
		ids:   newIDGenerator(time.Now),
	}
}
