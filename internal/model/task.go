package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DueDateLayout is the date-only layout used for task due dates in the
// persisted document.
const DueDateLayout = "2006-01-02"

// Task represents a to-do item with an optional due date.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"max=200"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	DueDate     string    `json:"dueDate"` // date-only, DueDateLayout
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Touch refreshes the UpdatedAt timestamp.
func (t *Task) Touch() {
	t.UpdatedAt = time.Now()
}

// ShortID returns the first 8 characters of the id for display.
func (t *Task) ShortID() string {
	if len(t.ID) > 8 {
		return t.ID[:8]
	}
	return t.ID
}

// Due parses the due date. ok is false when the date is absent or
// malformed; callers must not depend on the ordering of such tasks.
func (t *Task) Due() (time.Time, bool) {
	d, err := time.ParseInLocation(DueDateLayout, t.DueDate, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// IsOverdue returns true if the task is pending and past its due date.
func (t *Task) IsOverdue() bool {
	due, ok := t.Due()
	if !ok || t.Completed {
		return false
	}
	return due.AddDate(0, 0, 1).Before(time.Now())
}

// MatchesTerm reports whether the task matches a lowercased search term.
func (t *Task) MatchesTerm(term string) bool {
	return containsFold(t.Title, term) || containsFold(t.Description, term)
}

// IsValidPriority checks if a priority value is valid.
func IsValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// NewTask creates a new pending task due tomorrow with medium priority.
func NewTask(title string) *Task {
	now := time.Now()
	return &Task{
		ID:        uuid.New().String(),
		Title:     title,
		Completed: false,
		DueDate:   now.AddDate(0, 0, 1).Format(DueDateLayout),
		Priority:  PriorityMedium,
		Category:  "none",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// containsFold is a case-insensitive substring check shared by search.
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}
