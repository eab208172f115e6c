package render

import (
	"embed"
	"html/template"
	"sync"

	"todo-list/internal/todo"
	"todo-list/pkg/log"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// Renderer projects the task store into a page and turns user intents into
// store calls. It keeps the per-task view/edit state and the unsaved inputs
// of the new-task form; the store stays the only owner of tasks.
type Renderer struct {
	store todo.UseCase
	l     log.Logger
	tmpl  *template.Template

	mu      sync.Mutex
	editing map[int64]draft
	pending draft
}

// New creates a Renderer over store.
func New(store todo.UseCase, l log.Logger) *Renderer {
	if store == nil {
		panic("todo/render: store is required")
	}
	return &Renderer{
		store:   store,
		l:       l,
		tmpl:    pageTemplate,
		editing: make(map[int64]draft),
	}
}
