package model

import "time"

// StatusDone is the status written when a task is marked complete.
const StatusDone = "Done"

// CopySuffix is appended to the command of a duplicated task.
const CopySuffix = " (Copy)"

// Task represents a single task record in the Notion collection.
// Timestamps are stored as RFC3339 strings because the collection keeps
// them in plain rich-text fields.
type Task struct {
	ID          string `json:"id"`
	Command     string `json:"command"`
	Action      string `json:"action"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	LastUpdated string `json:"last_updated"`
}

// NewTask creates a new task with both timestamps set to now
func NewTask(command, action, status string) Task {
	now := Timestamp()
	return Task{
		Command:     command,
		Action:      action,
		Status:      status,
		CreatedAt:   now,
		LastUpdated: now,
	}
}

// Duplicate returns a copy of the task with a suffixed command, fresh
// timestamps and no page ID.
func (t Task) Duplicate() Task {
	return NewTask(t.Command+CopySuffix, t.Action, t.Status)
}

// Summary is the listing shape returned by fetch/search/filter routes.
type Summary struct {
	Command string `json:"Command"`
	Status  string `json:"Status"`
}

// Detail is the single-task shape returned by the get-task route.
type Detail struct {
	Command string `json:"Command"`
	Status  string `json:"Status"`
	Action  string `json:"Action"`
}

// Summarize projects a task list into the listing shape.
func Summarize(tasks []Task) []Summary {
	out := make([]Summary, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, Summary{Command: t.Command, Status: t.Status})
	}
	return out
}

// Timestamp returns the current time formatted for the timestamp fields.
func Timestamp() string {
	return time.Now().Format(time.RFC3339)
}
