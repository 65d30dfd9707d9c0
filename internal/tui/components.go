package tui

import (
	"fmt"
	"strings"

	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/output"
	"github.com/notepal/notepal/internal/parser"
)

// NotesComponent displays recently updated notes.
type NotesComponent struct {
	Notes []*model.Note
	Width int
	Limit int
}

// NewNotesComponent creates a new notes component.
func NewNotesComponent(notes []*model.Note, width, limit int) *NotesComponent {
	if limit > 0 && len(notes) > limit {
		notes = notes[:limit]
	}
	return &NotesComponent{
		Notes: notes,
		Width: width,
		Limit: limit,
	}
}

// View renders the notes component.
func (nc *NotesComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Recent Notes"))
	content.WriteString("\n")

	if len(nc.Notes) == 0 {
		content.WriteString(StyleMuted.Render("No notes yet"))
	} else {
		for i, note := range nc.Notes {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(nc.renderNote(note))
		}
	}

	box := StyleNotesBox.Width(nc.Width - 4)
	return box.Render(content.String())
}

func (nc *NotesComponent) renderNote(note *model.Note) string {
	var sb strings.Builder

	sb.WriteString(StyleNoteTitle.Render(output.Truncate(note.Title, nc.Width-20)))
	if note.IsDrawing() {
		sb.WriteString(" " + StyleMuted.Render("(drawing)"))
	}
	sb.WriteString("\n")
	sb.WriteString(StyleSubtitle.Render("  " + output.FormatTimeShort(note.UpdatedAt)))

	return sb.String()
}

// TasksComponent displays open tasks sorted by due date.
type TasksComponent struct {
	Tasks []*model.Task
	Width int
	Limit int
}

// NewTasksComponent creates a new tasks component.
func NewTasksComponent(tasks []*model.Task, width, limit int) *TasksComponent {
	if limit > 0 && len(tasks) > limit {
		tasks = tasks[:limit]
	}
	return &TasksComponent{
		Tasks: tasks,
		Width: width,
		Limit: limit,
	}
}

// View renders the tasks component. The box border turns red when any
// listed task is overdue.
func (tc *TasksComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Open Tasks"))
	content.WriteString("\n")

	overdue := false
	if len(tc.Tasks) == 0 {
		content.WriteString(StyleMuted.Render("Nothing to do"))
	} else {
		for i, task := range tc.Tasks {
			if i > 0 {
				content.WriteString("\n")
			}
			if task.IsOverdue() {
				overdue = true
			}
			content.WriteString(tc.renderTask(task))
		}
	}

	box := StyleTasksBox
	if overdue {
		box = StyleOverdueBox
	}
	return box.Width(tc.Width - 4).Render(content.String())
}

func (tc *TasksComponent) renderTask(task *model.Task) string {
	var sb strings.Builder

	box := "[ ]"
	if task.Completed {
		box = "[x]"
	}
	sb.WriteString(box + " " + StyleTaskTitle.Render(output.Truncate(task.Title, tc.Width-24)))
	sb.WriteString("\n")

	due := task.DueDate
	if task.IsOverdue() {
		sb.WriteString("  " + StyleOverdue.Render(due+" (overdue)"))
	} else {
		sb.WriteString("  " + StyleSubtitle.Render(due))
	}
	sb.WriteString(StyleMuted.Render(fmt.Sprintf("  %s/%s", task.Priority, task.Category)))

	return sb.String()
}

// RemindersComponent displays upcoming reminders.
type RemindersComponent struct {
	Reminders []*model.Reminder
	Width     int
	Limit     int
}

// NewRemindersComponent creates a new reminders component.
func NewRemindersComponent(reminders []*model.Reminder, width, limit int) *RemindersComponent {
	if limit > 0 && len(reminders) > limit {
		reminders = reminders[:limit]
	}
	return &RemindersComponent{
		Reminders: reminders,
		Width:     width,
		Limit:     limit,
	}
}

// View renders the reminders component.
func (rc *RemindersComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Upcoming Reminders"))
	content.WriteString("\n")

	if len(rc.Reminders) == 0 {
		content.WriteString(StyleMuted.Render("No reminders scheduled"))
	} else {
		for i, r := range rc.Reminders {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(rc.renderReminder(r))
		}
	}

	box := StyleRemindersBox.Width(rc.Width - 4)
	return box.Render(content.String())
}

func (rc *RemindersComponent) renderReminder(r *model.Reminder) string {
	var sb strings.Builder

	sb.WriteString(StyleReminder.Render(parser.FormatDateTime(r.DateTime)))
	sb.WriteString("  " + output.Truncate(r.Title, rc.Width-30))
	if r.IsRecurring() {
		sb.WriteString(" " + StyleMuted.Render("↻ "+r.Repeat))
	}
	sb.WriteString("\n")
	sb.WriteString("  " + StyleSubtitle.Render(parser.FormatTimeUntil(r.DateTime)))

	return sb.String()
}

// HelpBar renders the keyboard shortcut help line.
func HelpBar() string {
	items := []struct {
		key  string
		desc string
	}{
		{"r", "refresh"},
		{"n", "notes"},
		{"t", "tasks"},
		{"q", "quit"},
	}

	var parts []string
	for _, item := range items {
		parts = append(parts, StyleHelpKey.Render(item.key)+" "+StyleHelpDesc.Render(item.desc))
	}
	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
