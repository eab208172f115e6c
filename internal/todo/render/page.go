package render

import (
	"context"
	"io"
)

// Rows rebuilds the whole list from the store. Edit state for tasks that no
// longer exist is dropped.
func (r *Renderer) Rows(ctx context.Context) []Row {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows(ctx)
}

func (r *Renderer) rows(ctx context.Context) []Row {
	var rows []Row
	live := make(map[int64]struct{}, len(r.editing))

	for task := range r.store.List(ctx) {
		row := Row{Task: task, State: StateViewing}
		if d, ok := r.editing[task.ID]; ok {
			row.State = StateEditing
			row.DraftText = d.text
			row.DraftDate = d.date
			live[task.ID] = struct{}{}
		}
		rows = append(rows, row)
	}

	for id := range r.editing {
		if _, ok := live[id]; !ok {
			delete(r.editing, id)
		}
	}
	return rows
}

// Page assembles the view model for one render.
func (r *Renderer) Page(ctx context.Context, notice Notice) Page {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Page{
		Rows:    r.rows(ctx),
		Notice:  notice,
		NewText: r.pending.text,
		NewDate: r.pending.date,
	}
}

// Render writes the full HTML page.
func (r *Renderer) Render(ctx context.Context, w io.Writer, notice Notice) error {
	return r.tmpl.Execute(w, r.Page(ctx, notice))
}
