// Package repository provides the in-memory domain repository for NotePal.
//
// A Repository owns the single Store aggregate and the document store
// that persists it. Every mutation writes the full Store through
// immediately; there is no partial persistence. The repository is an
// explicit value owned by the application's runtime context and handed
// to whatever component needs it.
package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/notepal/notepal/internal/logging"
	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/storage"
)

// Repository holds the in-memory Store and persists it on every mutation.
// Safe for concurrent use: the daemon shares one repository between timer
// callbacks, cron sweeps, and autosave, so every method takes the lock.
type Repository struct {
	mu    sync.RWMutex
	store *model.Store
	docs  *storage.DocumentStore
}

// New loads the persisted document and returns a repository over it.
// A corrupt document is surfaced, never discarded.
func New(docs *storage.DocumentStore) (*Repository, error) {
	store, err := docs.Load()
	if err != nil {
		return nil, err
	}
	return &Repository{store: store, docs: docs}, nil
}

// Store exposes the underlying aggregate for read-only walking.
func (r *Repository) Store() *model.Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store
}

// Settings returns the current settings.
func (r *Repository) Settings() model.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.Settings
}

// Reload re-reads the persisted document, discarding in-memory state.
// Used after an import replaces the document underneath us.
func (r *Repository) Reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, err := r.docs.Load()
	if err != nil {
		return err
	}
	r.store = store
	return nil
}

// persist writes the full Store. Callers hold the lock. On failure the
// in-memory state is kept so the user can retry; the error is surfaced
// once, not retried.
func (r *Repository) persist() error {
	return r.docs.Save(r.store)
}

// Save flushes the current in-memory state. Mutating operations persist
// on their own; this exists for periodic autosave sweeps.
func (r *Repository) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persist()
}

// AddNote prepends a note; insertion order is most-recent-first.
func (r *Repository) AddNote(n *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.Notes = append([]*model.Note{n}, r.store.Notes...)
	logging.DebugLog("note added", logging.KeyNoteID, n.ID)
	return r.persist()
}

// AddDrawing prepends a drawing. Drawings live in the notes collection
// with a drawing type tag; the drawings view is derived from it.
func (r *Repository) AddDrawing(n *model.Note) error {
	n.Type = model.NoteTypeDrawing
	return r.AddNote(n)
}

// UpdateNote replaces the note with a matching id. An unknown id is a
// silent no-op, not an error.
func (r *Repository) UpdateNote(n *model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.store.Notes {
		if existing.ID == n.ID {
			r.store.Notes[i] = n
			return r.persist()
		}
	}
	return nil
}

// DeleteNote removes a note (or drawing) by id. Returns whether removal
// occurred; deleting twice is idempotent.
func (r *Repository) DeleteNote(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, n := range r.store.Notes {
		if n.ID == id {
			r.store.Notes = append(r.store.Notes[:i], r.store.Notes[i+1:]...)
			return true, r.persist()
		}
	}
	return false, nil
}

// GetNote returns the note with the given id, or nil.
func (r *Repository) GetNote(id string) *model.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.FindNote(id)
}

// AddTask prepends a task.
func (r *Repository) AddTask(t *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.Tasks = append([]*model.Task{t}, r.store.Tasks...)
	logging.DebugLog("task added", logging.KeyTaskID, t.ID)
	return r.persist()
}

// UpdateTask replaces the task with a matching id; silent no-op when the
// id is unknown.
func (r *Repository) UpdateTask(t *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.store.Tasks {
		if existing.ID == t.ID {
			r.store.Tasks[i] = t
			return r.persist()
		}
	}
	return nil
}

// DeleteTask removes a task by id, reporting whether removal occurred.
func (r *Repository) DeleteTask(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.store.Tasks {
		if t.ID == id {
			r.store.Tasks = append(r.store.Tasks[:i], r.store.Tasks[i+1:]...)
			return true, r.persist()
		}
	}
	return false, nil
}

// GetTask returns the task with the given id, or nil.
func (r *Repository) GetTask(id string) *model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.FindTask(id)
}

// SortedNotes returns all notes ordered by UpdatedAt descending, ties
// keeping their original order.
func (r *Repository) SortedNotes() []*model.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()
	notes := make([]*model.Note, len(r.store.Notes))
	copy(notes, r.store.Notes)
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	return notes
}

// Drawings returns the drawing view, most recent first.
func (r *Repository) Drawings() []*model.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.Drawings()
}

// SortedTasks returns all tasks ordered by due date ascending, ties
// keeping their original order. Tasks with unparseable due dates sort
// last; callers must not depend on their placement.
func (r *Repository) SortedTasks() []*model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tasks := make([]*model.Task, len(r.store.Tasks))
	copy(tasks, r.store.Tasks)
	sort.SliceStable(tasks, func(i, j int) bool {
		di, iok := tasks[i].Due()
		dj, jok := tasks[j].Due()
		if !iok || !jok {
			return iok
		}
		return di.Before(dj)
	})
	return tasks
}

// SearchResult holds the notes and tasks matching a search term.
type SearchResult struct {
	Notes []*model.Note `json:"notes"`
	Tasks []*model.Task `json:"tasks"`
}

// Search performs a case-insensitive substring match against note
// title+content and task title+description. Empty-term handling is the
// caller's concern.
func (r *Repository) Search(term string) SearchResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	term = strings.ToLower(term)

	result := SearchResult{
		Notes: []*model.Note{},
		Tasks: []*model.Task{},
	}
	for _, n := range r.store.Notes {
		if n.MatchesTerm(term) {
			result.Notes = append(result.Notes, n)
		}
	}
	for _, t := range r.store.Tasks {
		if t.MatchesTerm(term) {
			result.Tasks = append(result.Tasks, t)
		}
	}
	return result
}

// AddReminder appends a reminder.
func (r *Repository) AddReminder(rem *model.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.Reminders = append(r.store.Reminders, rem)
	logging.DebugLog("reminder added", logging.KeyReminderID, rem.ID)
	return r.persist()
}

// UpdateReminder replaces the reminder with a matching id; silent no-op
// when the id is unknown.
func (r *Repository) UpdateReminder(rem *model.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.store.Reminders {
		if existing.ID == rem.ID {
			r.store.Reminders[i] = rem
			return r.persist()
		}
	}
	return nil
}

// DeleteReminder removes a reminder by id, reporting whether removal
// occurred.
func (r *Repository) DeleteReminder(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rem := range r.store.Reminders {
		if rem.ID == id {
			r.store.Reminders = append(r.store.Reminders[:i], r.store.Reminders[i+1:]...)
			return true, r.persist()
		}
	}
	return false, nil
}

// GetReminder returns the reminder with the given id, or nil.
func (r *Repository) GetReminder(id string) *model.Reminder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.FindReminder(id)
}

// Reminders returns all reminder records, fired occurrences included.
func (r *Repository) Reminders() []*model.Reminder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.Reminders
}

// PendingReminders returns reminders still in the scheduled state. Only
// these are armed on load; fired occurrences stay as history.
func (r *Repository) PendingReminders() []*model.Reminder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var pending []*model.Reminder
	for _, rem := range r.store.Reminders {
		if rem.IsScheduled() {
			pending = append(pending, rem)
		}
	}
	return pending
}

// UpdateSettings shallow-merges the given fields into current settings
// and persists.
func (r *Repository) UpdateSettings(partial model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.Settings.Merge(partial)
	return r.persist()
}
