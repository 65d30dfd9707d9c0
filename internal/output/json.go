package output

import (
	"time"

	"github.com/notepal/notepal/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NoteOutput represents a note in JSON output.
type NoteOutput struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewNoteOutput creates a NoteOutput from a Note.
func NewNoteOutput(n *model.Note) *NoteOutput {
	return &NoteOutput{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Type:      string(n.Type),
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		UpdatedAt: n.UpdatedAt.Format(time.RFC3339),
	}
}

// NotesResponse represents the note list output in JSON.
type NotesResponse struct {
	Notes      []*NoteOutput `json:"notes"`
	TotalCount int           `json:"total_count"`
}

// NewNotesResponse creates a NotesResponse from notes.
func NewNotesResponse(notes []*model.Note) *NotesResponse {
	outputs := make([]*NoteOutput, len(notes))
	for i, n := range notes {
		outputs[i] = NewNoteOutput(n)
	}
	return &NotesResponse{Notes: outputs, TotalCount: len(outputs)}
}

// TaskOutput represents a task in JSON output.
type TaskOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	DueDate     string `json:"due_date"`
	Overdue     bool   `json:"overdue"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// NewTaskOutput creates a TaskOutput from a Task.
func NewTaskOutput(t *model.Task) *TaskOutput {
	return &TaskOutput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		DueDate:     t.DueDate,
		Overdue:     t.IsOverdue(),
		Priority:    t.Priority,
		Category:    t.Category,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

// TasksResponse represents the task list output in JSON.
type TasksResponse struct {
	Tasks      []*TaskOutput `json:"tasks"`
	TotalCount int           `json:"total_count"`
}

// NewTasksResponse creates a TasksResponse from tasks.
func NewTasksResponse(tasks []*model.Task) *TasksResponse {
	outputs := make([]*TaskOutput, len(tasks))
	for i, t := range tasks {
		outputs[i] = NewTaskOutput(t)
	}
	return &TasksResponse{Tasks: outputs, TotalCount: len(outputs)}
}

// ReminderOutput represents a reminder in JSON output.
type ReminderOutput struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	DateTime         string `json:"date_time"`
	Repeat           string `json:"repeat"`
	CustomRepeatDays int    `json:"custom_repeat_days,omitempty"`
	ItemID           string `json:"item_id"`
	ItemType         string `json:"item_type"`
	State            string `json:"state"`
}

// NewReminderOutput creates a ReminderOutput from a Reminder.
func NewReminderOutput(r *model.Reminder) *ReminderOutput {
	state := r.State
	if state == "" {
		state = model.ReminderScheduled
	}
	return &ReminderOutput{
		ID:               r.ID,
		Title:            r.Title,
		DateTime:         r.DateTime.Format(time.RFC3339),
		Repeat:           r.Repeat,
		CustomRepeatDays: r.CustomRepeatDays,
		ItemID:           r.ItemID,
		ItemType:         string(r.ItemType),
		State:            state,
	}
}

// RemindersResponse represents the reminder list output in JSON.
type RemindersResponse struct {
	Reminders  []*ReminderOutput `json:"reminders"`
	TotalCount int               `json:"total_count"`
}

// NewRemindersResponse creates a RemindersResponse from reminders.
func NewRemindersResponse(reminders []*model.Reminder) *RemindersResponse {
	outputs := make([]*ReminderOutput, len(reminders))
	for i, r := range reminders {
		outputs[i] = NewReminderOutput(r)
	}
	return &RemindersResponse{Reminders: outputs, TotalCount: len(outputs)}
}

// SearchResponse represents search output in JSON.
type SearchResponse struct {
	Term       string        `json:"term"`
	Notes      []*NoteOutput `json:"notes"`
	Tasks      []*TaskOutput `json:"tasks"`
	TotalCount int           `json:"total_count"`
}

// NewSearchResponse creates a SearchResponse from matches.
func NewSearchResponse(term string, notes []*model.Note, tasks []*model.Task) *SearchResponse {
	resp := &SearchResponse{
		Term:  term,
		Notes: make([]*NoteOutput, len(notes)),
		Tasks: make([]*TaskOutput, len(tasks)),
	}
	for i, n := range notes {
		resp.Notes[i] = NewNoteOutput(n)
	}
	for i, t := range tasks {
		resp.Tasks[i] = NewTaskOutput(t)
	}
	resp.TotalCount = len(notes) + len(tasks)
	return resp
}
