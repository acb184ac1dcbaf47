package domain

import "time"

type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskPatch carries the fields of a partial task update. A nil field
// means "leave unchanged".
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}
