package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Note Tests
// =============================================================================

func TestNewNote(t *testing.T) {
	note := NewNote("Groceries", "milk, eggs")

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "Groceries", note.Title)
	assert.Equal(t, "milk, eggs", note.Content)
	assert.Equal(t, NoteTypeText, note.Type)
	assert.False(t, note.IsDrawing())
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
}

func TestNewDrawing(t *testing.T) {
	drawing := NewDrawing("Sketch", "data:image/png;base64,AAAA")

	assert.Equal(t, NoteTypeDrawing, drawing.Type)
	assert.True(t, drawing.IsDrawing())
	assert.Equal(t, "data:image/png;base64,AAAA", drawing.Content)
}

func TestNoteTouch(t *testing.T) {
	note := NewNote("a", "b")
	before := note.UpdatedAt
	time.Sleep(time.Millisecond)
	note.Touch()
	assert.True(t, note.UpdatedAt.After(before))
}

func TestNoteMatchesTerm(t *testing.T) {
	note := NewNote("Shopping List", "Buy MILK tomorrow")

	assert.True(t, note.MatchesTerm("shopping"))
	assert.True(t, note.MatchesTerm("milk"))
	assert.False(t, note.MatchesTerm("cheese"))
}

func TestNoteShortID(t *testing.T) {
	note := &Note{ID: "a1b2c3d4-e5f6-7890"}
	assert.Equal(t, "a1b2c3d4", note.ShortID())

	short := &Note{ID: "abc"}
	assert.Equal(t, "abc", short.ShortID())
}

// =============================================================================
// Task Tests
// =============================================================================

func TestNewTask(t *testing.T) {
	task := NewTask("File taxes")

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "File taxes", task.Title)
	assert.False(t, task.Completed)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, "none", task.Category)

	// Default due date is tomorrow.
	assert.Equal(t, time.Now().AddDate(0, 0, 1).Format(DueDateLayout), task.DueDate)
}

func TestTaskDue(t *testing.T) {
	task := &Task{DueDate: "2026-03-15"}
	due, ok := task.Due()
	assert.True(t, ok)
	assert.Equal(t, 2026, due.Year())
	assert.Equal(t, time.March, due.Month())
	assert.Equal(t, 15, due.Day())

	t.Run("malformed", func(t *testing.T) {
		bad := &Task{DueDate: "not a date"}
		_, ok := bad.Due()
		assert.False(t, ok)
	})

	t.Run("absent", func(t *testing.T) {
		empty := &Task{}
		_, ok := empty.Due()
		assert.False(t, ok)
	})
}

func TestTaskIsOverdue(t *testing.T) {
	overdue := &Task{DueDate: time.Now().AddDate(0, 0, -2).Format(DueDateLayout)}
	assert.True(t, overdue.IsOverdue())

	// Due today counts as not overdue until the day is over.
	today := &Task{DueDate: time.Now().Format(DueDateLayout)}
	assert.False(t, today.IsOverdue())

	future := &Task{DueDate: time.Now().AddDate(0, 0, 3).Format(DueDateLayout)}
	assert.False(t, future.IsOverdue())

	// Completed tasks are never overdue.
	done := &Task{
		DueDate:   time.Now().AddDate(0, 0, -2).Format(DueDateLayout),
		Completed: true,
	}
	assert.False(t, done.IsOverdue())

	// Malformed due dates are never overdue.
	malformed := &Task{DueDate: "soonish"}
	assert.False(t, malformed.IsOverdue())
}

func TestIsValidPriority(t *testing.T) {
	assert.True(t, IsValidPriority(PriorityLow))
	assert.True(t, IsValidPriority(PriorityMedium))
	assert.True(t, IsValidPriority(PriorityHigh))
	assert.False(t, IsValidPriority("urgent"))
	assert.False(t, IsValidPriority(""))
}

// =============================================================================
// Reminder Tests
// =============================================================================

func TestNewReminder(t *testing.T) {
	due := time.Now().Add(time.Hour)
	r := NewReminder("Standup", due, "task-1", ItemTask)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Standup", r.Title)
	assert.Equal(t, due, r.DateTime)
	assert.Equal(t, RepeatNone, r.Repeat)
	assert.Equal(t, ReminderScheduled, r.State)
	assert.True(t, r.IsScheduled())
	assert.False(t, r.IsRecurring())
}

func TestReminderIsScheduled(t *testing.T) {
	// Legacy documents have no state field; absent means scheduled.
	legacy := &Reminder{}
	assert.True(t, legacy.IsScheduled())

	fired := &Reminder{State: ReminderFired}
	assert.False(t, fired.IsScheduled())
}

func TestReminderNextDateTime(t *testing.T) {
	base := time.Date(2026, 1, 31, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		repeat string
		custom int
		want   time.Time
	}{
		{"daily", RepeatDaily, 0, base.AddDate(0, 0, 1)},
		{"weekly", RepeatWeekly, 0, base.AddDate(0, 0, 7)},
		{"monthly", RepeatMonthly, 0, base.AddDate(0, 1, 0)},
		{"custom_10_days", RepeatCustom, 10, base.AddDate(0, 0, 10)},
		{"none", RepeatNone, 0, base},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := &Reminder{DateTime: base, Repeat: tc.repeat, CustomRepeatDays: tc.custom}
			assert.Equal(t, tc.want, r.NextDateTime())
		})
	}
}

func TestReminderNextOccurrence(t *testing.T) {
	due := time.Date(2026, 6, 1, 8, 30, 0, 0, time.Local)
	r := NewReminder("Water plants", due, "note-1", ItemNote)
	r.Repeat = RepeatDaily
	r.State = ReminderFired

	next := r.NextOccurrence()
	require.NotNil(t, next)

	// Successor is a fresh record, scheduled one period later.
	assert.NotEqual(t, r.ID, next.ID)
	assert.Equal(t, due.AddDate(0, 0, 1), next.DateTime)
	assert.Equal(t, ReminderScheduled, next.State)
	assert.Equal(t, r.Title, next.Title)
	assert.Equal(t, r.ItemID, next.ItemID)
	assert.Equal(t, r.ItemType, next.ItemType)
	assert.Equal(t, RepeatDaily, next.Repeat)
}

func TestReminderNextOccurrenceNonRecurring(t *testing.T) {
	r := NewReminder("One-off", time.Now(), "", ItemNote)
	assert.Nil(t, r.NextOccurrence())
}

func TestIsValidRepeatRule(t *testing.T) {
	for _, rule := range ValidRepeatRules() {
		assert.True(t, IsValidRepeatRule(rule), rule)
	}
	assert.False(t, IsValidRepeatRule("hourly"))
	assert.False(t, IsValidRepeatRule(""))
}

// =============================================================================
// Settings Tests
// =============================================================================

func TestSettingsNormalize(t *testing.T) {
	var s Settings
	s.Normalize()

	assert.Equal(t, "light", s.Theme)
	assert.Equal(t, "default", s.DefaultFont)
	assert.Equal(t, 30, s.AutoSaveInterval)
	assert.NotEmpty(t, s.Shortcuts)
	assert.NotEmpty(t, s.AvailableThemes)
}

func TestSettingsNormalizePartial(t *testing.T) {
	s := Settings{Theme: "dark"}
	s.Normalize()

	// Existing values survive, missing ones are back-filled.
	assert.Equal(t, "dark", s.Theme)
	assert.Equal(t, 30, s.AutoSaveInterval)
}

func TestSettingsHasTheme(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.HasTheme("dark"))
	assert.True(t, s.HasTheme("high-contrast"))
	assert.False(t, s.HasTheme("neon"))
}

func TestSettingsMerge(t *testing.T) {
	s := DefaultSettings()
	s.Merge(Settings{
		Theme:     "sepia",
		Shortcuts: map[string]string{"newNote": "Ctrl+Shift+N"},
	})

	assert.Equal(t, "sepia", s.Theme)
	assert.Equal(t, "Ctrl+Shift+N", s.Shortcuts["newNote"])
	// Untouched shortcut keys survive the merge.
	assert.Equal(t, "Ctrl+Alt+T", s.Shortcuts["newTask"])
	// Zero fields do not overwrite.
	assert.Equal(t, 30, s.AutoSaveInterval)
}

// =============================================================================
// Store Tests
// =============================================================================

func TestDefaultStore(t *testing.T) {
	s := DefaultStore()

	assert.NotNil(t, s.Notes)
	assert.NotNil(t, s.Tasks)
	assert.NotNil(t, s.Reminders)
	assert.Equal(t, "light", s.Settings.Theme)
}

func TestStoreDrawingsDerived(t *testing.T) {
	s := DefaultStore()
	s.Notes = append(s.Notes, NewNote("text", "body"), NewDrawing("sketch", "data:..."))

	drawings := s.Drawings()
	require.Len(t, drawings, 1)
	assert.Equal(t, "sketch", drawings[0].Title)
}

func TestStoreJSONRoundTrip(t *testing.T) {
	s := DefaultStore()
	s.Notes = append(s.Notes, NewNote("text", "body"), NewDrawing("sketch", "data:..."))
	s.Tasks = append(s.Tasks, NewTask("do thing"))
	s.Reminders = append(s.Reminders,
		NewReminder("ping", time.Now().Add(time.Hour).Truncate(time.Second), "", ItemNote))

	data, err := json.Marshal(s)
	require.NoError(t, err)

	// The document shape carries a drawings array for compatibility.
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "drawings")

	var loaded Store
	require.NoError(t, json.Unmarshal(data, &loaded))

	assert.Len(t, loaded.Notes, 2)
	assert.Len(t, loaded.Drawings(), 1)
	assert.Len(t, loaded.Tasks, 1)
	assert.Len(t, loaded.Reminders, 1)
	assert.Equal(t, s.Settings.Theme, loaded.Settings.Theme)
}

func TestStoreUnmarshalLegacyDrawings(t *testing.T) {
	// Older documents keep drawings only in the drawings array.
	raw := `{
		"notes": [{"id": "n1", "title": "note", "type": "note"}],
		"tasks": [],
		"drawings": [{"id": "d1", "title": "sketch", "content": "data:image/png;base64,AA"}],
		"reminders": []
	}`

	var s Store
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	// The legacy drawing is folded into the notes collection.
	assert.Len(t, s.Notes, 2)
	d := s.FindNote("d1")
	require.NotNil(t, d)
	assert.True(t, d.IsDrawing())
	assert.Len(t, s.Drawings(), 1)
}

func TestStoreUnmarshalDuplicateDrawing(t *testing.T) {
	// A drawing present in both arrays must not be duplicated.
	raw := `{
		"notes": [{"id": "d1", "title": "sketch", "type": "drawing"}],
		"drawings": [{"id": "d1", "title": "sketch"}]
	}`

	var s Store
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Len(t, s.Notes, 1)
	assert.True(t, s.Notes[0].IsDrawing())
}

func TestStoreNormalize(t *testing.T) {
	var s Store
	s.Normalize()

	assert.NotNil(t, s.Notes)
	assert.NotNil(t, s.Tasks)
	assert.NotNil(t, s.Reminders)
	assert.Equal(t, 30, s.Settings.AutoSaveInterval)
}

func TestStoreFind(t *testing.T) {
	s := DefaultStore()
	n := NewNote("a", "b")
	task := NewTask("c")
	r := NewReminder("d", time.Now(), n.ID, ItemNote)
	s.Notes = append(s.Notes, n)
	s.Tasks = append(s.Tasks, task)
	s.Reminders = append(s.Reminders, r)

	assert.Equal(t, n, s.FindNote(n.ID))
	assert.Equal(t, task, s.FindTask(task.ID))
	assert.Equal(t, r, s.FindReminder(r.ID))
	assert.Nil(t, s.FindNote("missing"))
	assert.Nil(t, s.FindTask("missing"))
	assert.Nil(t, s.FindReminder("missing"))
}
