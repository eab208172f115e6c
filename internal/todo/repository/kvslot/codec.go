package kvslot

import (
	"bytes"
	"encoding/json"

	"todo-list/internal/model"
)

// EncodeTasks serializes the collection as a JSON array in order.
// An empty collection encodes as [] rather than null.
func EncodeTasks(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return json.Marshal(tasks)
}

// DecodeTasks parses a JSON array of tasks. A literal null or blank input is
// an empty collection.
func DecodeTasks(raw []byte) ([]model.Task, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []model.Task{}, nil
	}

	var tasks []model.Task
	if err := json.Unmarshal(trimmed, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}
