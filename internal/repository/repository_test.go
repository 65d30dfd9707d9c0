package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/storage"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := New(storage.NewDocumentStore(db))
	require.NoError(t, err)
	return repo
}

// =============================================================================
// Note Tests
// =============================================================================

func TestNoteRoundTrip(t *testing.T) {
	repo := testRepo(t)

	n := model.NewNote("Groceries", "milk")
	require.NoError(t, repo.AddNote(n))

	got := repo.GetNote(n.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Groceries", got.Title)

	// Mutations persist; a reload sees the same data.
	require.NoError(t, repo.Reload())
	assert.NotNil(t, repo.GetNote(n.ID))
}

func TestUpdateNoteUnknownIDIsNoOp(t *testing.T) {
	repo := testRepo(t)

	ghost := model.NewNote("ghost", "")
	assert.NoError(t, repo.UpdateNote(ghost))
	assert.Nil(t, repo.GetNote(ghost.ID))
}

func TestDeleteNoteIdempotent(t *testing.T) {
	repo := testRepo(t)

	n := model.NewNote("a", "")
	require.NoError(t, repo.AddNote(n))

	removed, err := repo.DeleteNote(n.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteNote(n.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSortedNotesMostRecentFirst(t *testing.T) {
	repo := testRepo(t)

	old := model.NewNote("old", "")
	old.UpdatedAt = time.Now().Add(-time.Hour)
	recent := model.NewNote("recent", "")

	require.NoError(t, repo.AddNote(old))
	require.NoError(t, repo.AddNote(recent))

	notes := repo.SortedNotes()
	require.Len(t, notes, 2)
	assert.Equal(t, "recent", notes[0].Title)
	assert.Equal(t, "old", notes[1].Title)
}

func TestSortedNotesEqualUpdatedAtKeepOrder(t *testing.T) {
	repo := testRepo(t)

	stamp := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for _, title := range []string{"a", "b", "c"} {
		n := model.NewNote(title, "")
		n.UpdatedAt = stamp
		require.NoError(t, repo.AddNote(n))
	}

	// AddNote prepends; ties keep that order.
	notes := repo.SortedNotes()
	require.Len(t, notes, 3)
	assert.Equal(t, "c", notes[0].Title)
	assert.Equal(t, "b", notes[1].Title)
	assert.Equal(t, "a", notes[2].Title)
}

// =============================================================================
// Drawing Tests
// =============================================================================

func TestDrawingsDerivedFromNotes(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.AddNote(model.NewNote("text", "")))
	d := model.NewDrawing("sketch", "data:x")
	require.NoError(t, repo.AddDrawing(d))

	drawings := repo.Drawings()
	require.Len(t, drawings, 1)
	assert.Equal(t, "sketch", drawings[0].Title)

	// Deleting the drawing removes it from both views.
	removed, err := repo.DeleteNote(d.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, repo.Drawings())
	assert.Nil(t, repo.GetNote(d.ID))
}

func TestAddDrawingForcesType(t *testing.T) {
	repo := testRepo(t)

	// Even a note-typed value becomes a drawing through AddDrawing.
	n := model.NewNote("mislabeled", "data:x")
	require.NoError(t, repo.AddDrawing(n))
	assert.True(t, repo.GetNote(n.ID).IsDrawing())
}

// =============================================================================
// Task Tests
// =============================================================================

func TestTaskRoundTrip(t *testing.T) {
	repo := testRepo(t)

	task := model.NewTask("File taxes")
	require.NoError(t, repo.AddTask(task))

	got := repo.GetTask(task.ID)
	require.NotNil(t, got)

	got.Completed = true
	require.NoError(t, repo.UpdateTask(got))

	require.NoError(t, repo.Reload())
	assert.True(t, repo.GetTask(task.ID).Completed)
}

func TestSortedTasksByDueDate(t *testing.T) {
	repo := testRepo(t)

	late := model.NewTask("late")
	late.DueDate = "2026-12-01"
	soon := model.NewTask("soon")
	soon.DueDate = "2026-09-01"
	broken := model.NewTask("broken")
	broken.DueDate = "whenever"

	require.NoError(t, repo.AddTask(late))
	require.NoError(t, repo.AddTask(soon))
	require.NoError(t, repo.AddTask(broken))

	tasks := repo.SortedTasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "soon", tasks[0].Title)
	assert.Equal(t, "late", tasks[1].Title)
	// Unparseable due dates sort last.
	assert.Equal(t, "broken", tasks[2].Title)
}

func TestSortedTasksEqualDueDatesKeepOrder(t *testing.T) {
	repo := testRepo(t)

	for _, title := range []string{"first", "second", "third"} {
		task := model.NewTask(title)
		task.DueDate = "2026-10-01"
		require.NoError(t, repo.AddTask(task))
	}

	// AddTask prepends; tasks with equal due dates keep that order.
	tasks := repo.SortedTasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "first", tasks[2].Title)
}

func TestDeleteTaskIdempotent(t *testing.T) {
	repo := testRepo(t)

	task := model.NewTask("x")
	require.NoError(t, repo.AddTask(task))

	removed, err := repo.DeleteTask(task.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteTask(task.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

// =============================================================================
// Search Tests
// =============================================================================

func TestSearch(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.AddNote(model.NewNote("Meeting notes", "discuss budget")))
	require.NoError(t, repo.AddNote(model.NewNote("Grocery list", "milk")))
	budgetTask := model.NewTask("Review BUDGET spreadsheet")
	require.NoError(t, repo.AddTask(budgetTask))

	result := repo.Search("budget")
	assert.Len(t, result.Notes, 1)
	assert.Len(t, result.Tasks, 1)

	miss := repo.Search("nonexistent")
	assert.Empty(t, miss.Notes)
	assert.Empty(t, miss.Tasks)
	// Collections are non-nil even when empty so JSON output shows [].
	assert.NotNil(t, miss.Notes)
	assert.NotNil(t, miss.Tasks)
}

// =============================================================================
// Reminder Tests
// =============================================================================

func TestReminderLifecycle(t *testing.T) {
	repo := testRepo(t)

	r := model.NewReminder("ping", time.Now().Add(time.Hour), "", model.ItemNote)
	require.NoError(t, repo.AddReminder(r))

	assert.Len(t, repo.PendingReminders(), 1)

	r.State = model.ReminderFired
	require.NoError(t, repo.UpdateReminder(r))

	// Fired reminders stay as records but are no longer pending.
	assert.Len(t, repo.Reminders(), 1)
	assert.Empty(t, repo.PendingReminders())

	removed, err := repo.DeleteReminder(r.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, repo.Reminders())
}

// =============================================================================
// Settings Tests
// =============================================================================

func TestUpdateSettingsMerges(t *testing.T) {
	repo := testRepo(t)

	require.NoError(t, repo.UpdateSettings(model.Settings{Theme: "dark"}))
	assert.Equal(t, "dark", repo.Settings().Theme)
	// Unspecified fields keep their values.
	assert.Equal(t, 30, repo.Settings().AutoSaveInterval)

	require.NoError(t, repo.Reload())
	assert.Equal(t, "dark", repo.Settings().Theme)
}

func TestSave(t *testing.T) {
	repo := testRepo(t)

	// Direct store mutation followed by Save persists, as the autosave
	// sweep relies on.
	repo.Store().Settings.Theme = "blue"
	require.NoError(t, repo.Save())

	require.NoError(t, repo.Reload())
	assert.Equal(t, "blue", repo.Settings().Theme)
}

// =============================================================================
// Concurrency Tests
// =============================================================================

// The daemon shares one repository between timer callbacks, the minute
// sweep, and autosave. Mixed writes, reloads, and saves from separate
// goroutines must leave the store consistent.
func TestConcurrentMutationReloadAndSave(t *testing.T) {
	repo := testRepo(t)

	const writes = 20
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			r := model.NewReminder("tick", time.Now().Add(time.Hour), "", model.ItemNote)
			assert.NoError(t, repo.AddReminder(r))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			assert.NoError(t, repo.Reload())
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			assert.NoError(t, repo.Save())
			repo.PendingReminders()
		}
	}()

	wg.Wait()

	// Every add persisted under the lock, so a final reload sees all of
	// them no matter how the goroutines interleaved.
	require.NoError(t, repo.Reload())
	assert.Len(t, repo.Reminders(), writes)
}
