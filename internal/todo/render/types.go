package render

import "todo-list/internal/model"

// State is the display state of one task row.
type State int

const (
	StateViewing State = iota
	StateEditing
)

func (s State) String() string {
	if s == StateEditing {
		return "editing"
	}
	return "viewing"
}

// Notice is a user-visible message produced by an intent. Empty means none.
type Notice string

const (
	NoticeNone          Notice = ""
	NoticeMissingFields Notice = "Please enter a task and a due date!"
	NoticeTaskGone      Notice = "That task no longer exists."
	NoticeSaveFailed    Notice = "Could not save your tasks. Please try again."
)

// KeyEnter is the key signal that submits the new-task inputs.
const KeyEnter = "Enter"

// Row is one rendered list entry. Draft fields are only set while editing.
type Row struct {
	Task      model.Task
	State     State
	DraftText string
	DraftDate string
}

// Editing reports whether the row shows the edit form.
func (r Row) Editing() bool { return r.State == StateEditing }

// Page is everything the page template needs.
type Page struct {
	Rows    []Row
	Notice  Notice
	NewText string
	NewDate string
}

type draft struct {
	text string
	date string
}

var noticeCodes = map[Notice]string{
	NoticeMissingFields: "missing-fields",
	NoticeTaskGone:      "task-gone",
	NoticeSaveFailed:    "save-failed",
}

// Code is a short stable token for carrying a notice across a redirect.
func (n Notice) Code() string {
	return noticeCodes[n]
}

// NoticeFromCode reverses Code. Unknown codes yield NoticeNone.
func NoticeFromCode(code string) Notice {
	for n, c := range noticeCodes {
		if c == code {
			return n
		}
	}
	return NoticeNone
}
