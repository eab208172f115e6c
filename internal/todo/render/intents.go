package render

import (
	"context"
	"errors"

	"todo-list/internal/todo"
)

// SubmitNew adds a task from the new-task inputs. On failure the inputs are
// kept so the next render shows them again.
func (r *Renderer) SubmitNew(ctx context.Context, text, date string) Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.store.Add(ctx, todo.AddInput{Text: text, Date: date}); err != nil {
		r.pending = draft{text: text, date: date}
		return r.noticeFor(ctx, "SubmitNew", err)
	}
	r.pending = draft{}
	return NoticeNone
}

// KeyDown handles a key signal on the new-task text input. Only Enter submits.
func (r *Renderer) KeyDown(ctx context.Context, key, text, date string) Notice {
	if key != KeyEnter {
		return NoticeNone
	}
	return r.SubmitNew(ctx, text, date)
}

// RequestEdit moves a task from Viewing to Editing, seeding the draft from the
// stored values.
func (r *Renderer) RequestEdit(ctx context.Context, id int64) Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, err := r.store.Detail(ctx, id)
	if err != nil {
		delete(r.editing, id)
		return r.noticeFor(ctx, "RequestEdit", err)
	}
	r.editing[id] = draft{text: task.Text, date: task.Date}
	return NoticeNone
}

// SaveEdit stores the edited values. Validation and write failures keep the
// row in Editing with the submitted draft; a vanished task returns it to
// Viewing (the row disappears on the next render).
func (r *Renderer) SaveEdit(ctx context.Context, id int64, text, date string) Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.store.Update(ctx, todo.UpdateInput{ID: id, Text: text, Date: date})
	switch {
	case err == nil, errors.Is(err, todo.ErrNotFound):
		delete(r.editing, id)
	default:
		r.editing[id] = draft{text: text, date: date}
	}
	return r.noticeFor(ctx, "SaveEdit", err)
}

// CancelEdit discards the draft and returns the row to Viewing.
func (r *Renderer) CancelEdit(ctx context.Context, id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.editing, id)
}

// RequestDelete removes the task. Deleting an unknown id is not an error.
func (r *Renderer) RequestDelete(ctx context.Context, id int64) Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Remove(ctx, id); err != nil {
		return r.noticeFor(ctx, "RequestDelete", err)
	}
	delete(r.editing, id)
	return NoticeNone
}

func (r *Renderer) noticeFor(ctx context.Context, intent string, err error) Notice {
	switch {
	case err == nil:
		return NoticeNone
	case errors.Is(err, todo.ErrValidation):
		return NoticeMissingFields
	case errors.Is(err, todo.ErrNotFound):
		return NoticeTaskGone
	default:
		r.l.Errorf(ctx, "render.%s: %v", intent, err)
		return NoticeSaveFailed
	}
}
