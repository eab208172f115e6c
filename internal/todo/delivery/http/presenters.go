package http

import (
	"todo-list/internal/model"
	"todo-list/internal/todo"
)

// --- Request DTOs ---

type createReq struct {
	Text string `json:"text"`
	Date string `json:"date"`
}

func (r createReq) toInput() todo.AddInput {
	return todo.AddInput{Text: r.Text, Date: r.Date}
}

type updateReq struct {
	ID   int64  `json:"-"` // populated from URI param
	Text string `json:"text"`
	Date string `json:"date"`
}

func (r updateReq) toInput() todo.UpdateInput {
	return todo.UpdateInput{ID: r.ID, Text: r.Text, Date: r.Date}
}

// --- Response DTOs ---

type taskResp struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{ID: t.ID, Text: t.Text, Date: t.Date}
}

type taskItemResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskItemResp(t model.Task) taskItemResp {
	return taskItemResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listResp{Tasks: items, Total: len(items)}
}
