package model

// Task is a single to-do entry. The json tags are the persisted format.
type Task struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"` // due date/time exactly as the input control produced it
}
