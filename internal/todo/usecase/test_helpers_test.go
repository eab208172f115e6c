package usecase_test

import (
	"context"
	"errors"
	"testing"

	"todo-list/internal/model"
	"todo-list/internal/todo/repository"
	"todo-list/internal/todo/repository/kvslot"
	"todo-list/pkg/kvstore"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// countingRepo wraps a Repository, counting saves and optionally failing them.
type countingRepo struct {
	repository.Repository
	saves   int
	saveErr error
}

func (r *countingRepo) SaveTasks(ctx context.Context, tasks []model.Task) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	return r.Repository.SaveTasks(ctx, tasks)
}

// failingLoadRepo fails every load with err.
type failingLoadRepo struct {
	repository.Repository
	err error
}

func (r *failingLoadRepo) LoadTasks(ctx context.Context) ([]model.Task, error) {
	return nil, r.err
}

var errDisk = errors.New("disk full")

func newSlot(t *testing.T) (kvstore.Store, *countingRepo) {
	t.Helper()
	kv, err := kvstore.NewMemoryStore(4)
	if err != nil {
		t.Fatalf("NewMemoryStore: %v", err)
	}
	return kv, &countingRepo{Repository: kvslot.New(kv, kvslot.DefaultKey, &mockLogger{})}
}

// slotTasks decodes whatever the slot currently holds.
func slotTasks(t *testing.T, kv kvstore.Store) []model.Task {
	t.Helper()
	raw, ok, err := kv.Get(context.Background(), kvslot.DefaultKey)
	if err != nil {
		t.Fatalf("kv.Get: %v", err)
	}
	if !ok {
		return []model.Task{}
	}
	tasks, err := kvslot.DecodeTasks(raw)
	if err != nil {
		t.Fatalf("slot holds malformed data: %v", err)
	}
	return tasks
}
