package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/parser"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red
	colorSuccess   = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleNoteTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleTaskTitle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleOverdue = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// NoteTitle formats a note title.
func (c *CLIFormatter) NoteTitle(title string) string {
	if c.IsColorEnabled() {
		return styleNoteTitle.Render(title)
	}
	return title
}

// TaskTitle formats a task title.
func (c *CLIFormatter) TaskTitle(title string) string {
	if c.IsColorEnabled() {
		return styleTaskTitle.Render(title)
	}
	return title
}

// Priority formats a task priority with a color per level.
func (c *CLIFormatter) Priority(p string) string {
	if !c.IsColorEnabled() {
		return p
	}
	switch p {
	case model.PriorityHigh:
		return styleError.Render(p)
	case model.PriorityMedium:
		return styleWarning.Render(p)
	default:
		return styleMuted.Render(p)
	}
}

// terminalWidth returns the width of the attached terminal, or a sane
// default when output is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// PrintNote prints a single note with a content preview sized to the
// terminal.
func (c *CLIFormatter) PrintNote(n *model.Note) {
	marker := ""
	if n.IsDrawing() {
		marker = " 🎨"
	}
	c.Printf("%s%s\n", c.NoteTitle(n.Title), marker)
	c.Printf("  ID: %s\n", n.ID)
	if !n.IsDrawing() && n.Content != "" {
		c.Printf("  %s\n", Truncate(strings.ReplaceAll(n.Content, "\n", " "), terminalWidth()-4))
	}
	c.Printf("  Updated: %s\n", FormatTimeShort(n.UpdatedAt))
}

// PrintTask prints a single task.
func (c *CLIFormatter) PrintTask(t *model.Task) {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	c.Printf("%s %s\n", box, c.TaskTitle(t.Title))
	c.Printf("  ID: %s\n", t.ID)
	if t.Description != "" {
		c.Printf("  %s\n", Truncate(t.Description, terminalWidth()-4))
	}
	due := t.DueDate
	if t.IsOverdue() {
		if c.IsColorEnabled() {
			due = styleOverdue.Render(due + " (overdue)")
		} else {
			due += " (overdue)"
		}
	}
	c.Printf("  Due: %s  Priority: %s  Category: %s\n", due, c.Priority(t.Priority), t.Category)
}

// PrintReminder prints a single reminder.
func (c *CLIFormatter) PrintReminder(r *model.Reminder) {
	c.Printf("%s %s\n", r.ShortID(), styleBold.Render(r.Title))
	c.Printf("  When: %s (%s)\n", parser.FormatDateTime(r.DateTime), parser.FormatTimeUntil(r.DateTime))
	if r.IsRecurring() {
		c.Printf("  Repeats: %s\n", r.Repeat)
	}
	if !r.IsScheduled() {
		c.Muted("  (fired)")
	}
}

// PrintSearchResults prints matching notes and tasks grouped by kind.
func (c *CLIFormatter) PrintSearchResults(term string, notes []*model.Note, tasks []*model.Task) {
	total := len(notes) + len(tasks)
	if total == 0 {
		c.Muted(fmt.Sprintf("No matches for %q.", term))
		return
	}

	c.Title(fmt.Sprintf("%d match(es) for %q", total, term))
	if len(notes) > 0 {
		c.Println()
		c.Println(styleBold.Render("Notes"))
		for _, n := range notes {
			c.PrintNote(n)
		}
	}
	if len(tasks) > 0 {
		c.Println()
		c.Println(styleBold.Render("Tasks"))
		for _, t := range tasks {
			c.PrintTask(t)
		}
	}
}

// PrintSettings prints the current settings.
func (c *CLIFormatter) PrintSettings(s model.Settings) {
	c.Printf("Theme:              %s\n", s.Theme)
	c.Printf("Default font:       %s\n", s.DefaultFont)
	c.Printf("Auto-save interval: %ds\n", s.AutoSaveInterval)
	c.Printf("Available themes:   %s\n", strings.Join(s.AvailableThemes, ", "))
	if len(s.Shortcuts) > 0 {
		c.Println("Shortcuts:")
		for action, combo := range s.Shortcuts {
			c.Printf("  %-10s %s\n", action, combo)
		}
	}
}

// Table helpers for CLI output.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	c.Println(styleBold.Render(headerLine.String()))

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(sep.String())

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], col))
			}
		}
		c.Println(rowLine.String())
	}
}
