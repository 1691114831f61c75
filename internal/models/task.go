package models

import (
	"strconv"
	"time"
)

// now is a test seam for the task id clock.
var now = time.Now

// Task is a user-owned to-do item.
type Task struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// NewTask builds a Task owned by userID with a timestamp-derived id and
// Completed unset. Ids taken from the wall clock can collide in theory;
// the collection tolerates duplicates rather than checking for them.
func NewTask(userID, text string) Task {
	return Task{
		ID:     strconv.FormatInt(now().UnixNano(), 10),
		UserID: userID,
		Text:   text,
	}
}
