package render_test

import (
	"bytes"
	"context"
	"iter"
	"slices"
	"strings"
	"testing"

	"todo-list/internal/model"
	"todo-list/internal/todo"
	"todo-list/internal/todo/render"
	"todo-list/internal/todo/repository/kvslot"
	"todo-list/internal/todo/usecase"
	"todo-list/pkg/kvstore"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// brokenStore lists tasks but fails every write.
type brokenStore struct {
	tasks []model.Task
}

func (s *brokenStore) Initialize(ctx context.Context) {}
func (s *brokenStore) List(ctx context.Context) iter.Seq[model.Task] {
	return slices.Values(s.tasks)
}
func (s *brokenStore) Detail(ctx context.Context, id int64) (model.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, todo.ErrNotFound
}
func (s *brokenStore) Add(ctx context.Context, input todo.AddInput) (model.Task, error) {
	return model.Task{}, todo.ErrPersist
}
func (s *brokenStore) Update(ctx context.Context, input todo.UpdateInput) (model.Task, error) {
	return model.Task{}, todo.ErrPersist
}
func (s *brokenStore) Remove(ctx context.Context, id int64) error { return todo.ErrPersist }

func newStore(t *testing.T) todo.UseCase {
	t.Helper()
	kv, err := kvstore.NewMemoryStore(4)
	if err != nil {
		t.Fatalf("NewMemoryStore: %v", err)
	}
	uc := usecase.New(kvslot.New(kv, kvslot.DefaultKey, &mockLogger{}), &mockLogger{})
	uc.Initialize(context.Background())
	return uc
}

func onlyRow(t *testing.T, r *render.Renderer) render.Row {
	t.Helper()
	rows := r.Rows(context.Background())
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	return rows[0]
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestEditStateMachine(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (todo.UseCase, *render.Renderer, model.Task) {
		store := newStore(t)
		task, err := store.Add(ctx, todo.AddInput{Text: "Buy milk", Date: "2024-01-01T10:00"})
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		return store, render.New(store, &mockLogger{}), task
	}

	t.Run("Starts in viewing", func(t *testing.T) {
		_, r, task := setup(t)
		row := onlyRow(t, r)
		if row.State != render.StateViewing || row.Task != task {
			t.Errorf("unexpected row %+v", row)
		}
	})

	t.Run("Edit then cancel discards draft", func(t *testing.T) {
		store, r, task := setup(t)
		if n := r.RequestEdit(ctx, task.ID); n != render.NoticeNone {
			t.Fatalf("RequestEdit notice: %q", n)
		}
		row := onlyRow(t, r)
		if !row.Editing() || row.DraftText != "Buy milk" || row.DraftDate != "2024-01-01T10:00" {
			t.Fatalf("expected editing row seeded from store, got %+v", row)
		}

		r.SaveEdit(ctx, task.ID, "", "") // fails validation, draft now blank
		r.CancelEdit(ctx, task.ID)

		if row := onlyRow(t, r); row.Editing() {
			t.Errorf("expected viewing after cancel")
		}
		got, _ := store.Detail(ctx, task.ID)
		if got != task {
			t.Errorf("cancel must not touch the store: %+v", got)
		}
	})

	t.Run("Save success returns to viewing", func(t *testing.T) {
		store, r, task := setup(t)
		r.RequestEdit(ctx, task.ID)
		if n := r.SaveEdit(ctx, task.ID, "Buy oat milk", "2024-01-02T10:00"); n != render.NoticeNone {
			t.Fatalf("SaveEdit notice: %q", n)
		}
		row := onlyRow(t, r)
		if row.Editing() {
			t.Errorf("expected viewing after save")
		}
		if row.Task.Text != "Buy oat milk" || row.Task.ID != task.ID {
			t.Errorf("unexpected task after save: %+v", row.Task)
		}
		got, _ := store.Detail(ctx, task.ID)
		if got.Date != "2024-01-02T10:00" {
			t.Errorf("store not updated: %+v", got)
		}
	})

	t.Run("Save validation failure stays editing", func(t *testing.T) {
		_, r, task := setup(t)
		r.RequestEdit(ctx, task.ID)
		if n := r.SaveEdit(ctx, task.ID, "  ", "2024-02-02T10:00"); n != render.NoticeMissingFields {
			t.Errorf("expected missing fields notice, got %q", n)
		}
		row := onlyRow(t, r)
		if !row.Editing() || row.DraftDate != "2024-02-02T10:00" {
			t.Errorf("expected editing row with submitted draft, got %+v", row)
		}
		if row.Task.Text != "Buy milk" {
			t.Errorf("task must be unchanged, got %+v", row.Task)
		}
	})

	t.Run("Save after concurrent delete", func(t *testing.T) {
		store, r, task := setup(t)
		r.RequestEdit(ctx, task.ID)
		store.Remove(ctx, task.ID)

		if n := r.SaveEdit(ctx, task.ID, "x", "y"); n != render.NoticeTaskGone {
			t.Errorf("expected task gone notice, got %q", n)
		}
		if rows := r.Rows(ctx); len(rows) != 0 {
			t.Errorf("expected empty list, got %+v", rows)
		}
	})

	t.Run("Edit unknown task", func(t *testing.T) {
		_, r, _ := setup(t)
		if n := r.RequestEdit(ctx, 12345); n != render.NoticeTaskGone {
			t.Errorf("expected task gone notice, got %q", n)
		}
	})

	t.Run("Delete while editing", func(t *testing.T) {
		store, r, task := setup(t)
		r.RequestEdit(ctx, task.ID)
		if n := r.RequestDelete(ctx, task.ID); n != render.NoticeNone {
			t.Fatalf("RequestDelete notice: %q", n)
		}
		if rows := r.Rows(ctx); len(rows) != 0 {
			t.Errorf("expected empty list, got %+v", rows)
		}
		if n := len(slices.Collect(store.List(ctx))); n != 0 {
			t.Errorf("expected store to be empty, got %d", n)
		}
	})

	t.Run("Stale edit state is pruned on rebuild", func(t *testing.T) {
		store, r, task := setup(t)
		r.RequestEdit(ctx, task.ID)
		store.Remove(ctx, task.ID)
		r.Rows(ctx)

		again, _ := store.Add(ctx, todo.AddInput{Text: "new", Date: "d"})
		for _, row := range r.Rows(ctx) {
			if row.Task.ID == again.ID && row.Editing() {
				t.Errorf("new task must start in viewing")
			}
		}
	})
}

func TestSubmitNew(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing fields keep the inputs", func(t *testing.T) {
		r := render.New(newStore(t), &mockLogger{})
		if n := r.SubmitNew(ctx, "Buy milk", ""); n != render.NoticeMissingFields {
			t.Fatalf("expected missing fields notice, got %q", n)
		}
		page := r.Page(ctx, render.NoticeNone)
		if page.NewText != "Buy milk" || len(page.Rows) != 0 {
			t.Errorf("unexpected page %+v", page)
		}
	})

	t.Run("Success clears the inputs", func(t *testing.T) {
		r := render.New(newStore(t), &mockLogger{})
		r.SubmitNew(ctx, "", "d")
		if n := r.SubmitNew(ctx, " Buy milk ", "2024-01-01T10:00"); n != render.NoticeNone {
			t.Fatalf("unexpected notice %q", n)
		}
		page := r.Page(ctx, render.NoticeNone)
		if page.NewText != "" || page.NewDate != "" {
			t.Errorf("expected inputs cleared, got %+v", page)
		}
		if len(page.Rows) != 1 || page.Rows[0].Task.Text != "Buy milk" {
			t.Errorf("unexpected rows %+v", page.Rows)
		}
	})

	t.Run("Only Enter submits", func(t *testing.T) {
		r := render.New(newStore(t), &mockLogger{})
		r.KeyDown(ctx, "a", "Buy milk", "d")
		if rows := r.Rows(ctx); len(rows) != 0 {
			t.Fatalf("non-Enter key must not add, got %d rows", len(rows))
		}
		r.KeyDown(ctx, render.KeyEnter, "Buy milk", "d")
		if rows := r.Rows(ctx); len(rows) != 1 {
			t.Errorf("Enter must add, got %d rows", len(rows))
		}
	})

	t.Run("Write failures surface a notice", func(t *testing.T) {
		store := &brokenStore{tasks: []model.Task{{ID: 1, Text: "a", Date: "d"}}}
		r := render.New(store, &mockLogger{})

		if n := r.SubmitNew(ctx, "x", "y"); n != render.NoticeSaveFailed {
			t.Errorf("SubmitNew: expected save failed, got %q", n)
		}
		if n := r.RequestDelete(ctx, 1); n != render.NoticeSaveFailed {
			t.Errorf("RequestDelete: expected save failed, got %q", n)
		}
		r.RequestEdit(ctx, 1)
		if n := r.SaveEdit(ctx, 1, "x", "y"); n != render.NoticeSaveFailed {
			t.Errorf("SaveEdit: expected save failed, got %q", n)
		}
		if row := onlyRow(t, r); !row.Editing() || row.DraftText != "x" {
			t.Errorf("failed save must stay editing with draft, got %+v", row)
		}
	})
}

func TestRender(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	plain, _ := store.Add(ctx, todo.AddInput{Text: "Buy milk", Date: "2024-01-01T10:00"})
	evil, _ := store.Add(ctx, todo.AddInput{Text: `<script>alert(1)</script>`, Date: "2024-01-02T10:00"})
	r := render.New(store, &mockLogger{})
	r.RequestEdit(ctx, evil.ID)

	var buf bytes.Buffer
	if err := r.Render(ctx, &buf, render.NoticeMissingFields); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"Buy milk",
		"(Due: 2024-01-01T10:00)",
		`action="/tasks/` + itoa(plain.ID) + `/edit"`,
		`action="/tasks/` + itoa(plain.ID) + `/delete"`,
		`action="/tasks/` + itoa(evil.ID) + `/save"`,
		`formaction="/tasks/` + itoa(evil.ID) + `/cancel"`,
		`data-state="editing"`,
		"Please enter a task and a due date!",
		"&lt;script&gt;",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Errorf("task text must be escaped")
	}
}

func TestNoticeCodes(t *testing.T) {
	for _, n := range []render.Notice{render.NoticeMissingFields, render.NoticeTaskGone, render.NoticeSaveFailed} {
		if got := render.NoticeFromCode(n.Code()); got != n {
			t.Errorf("round trip of %q gave %q", n, got)
		}
	}
	if render.NoticeNone.Code() != "" {
		t.Errorf("empty notice must have no code")
	}
	if render.NoticeFromCode("<b>spoofed</b>") != render.NoticeNone {
		t.Errorf("unknown codes must be ignored")
	}
}
