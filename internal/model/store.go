package model

import "encoding/json"

// Store is the root aggregate of all persisted application data. Exactly
// one Store exists per device; it is serialized and loaded as a whole.
//
// Drawings are not stored separately: the drawings list in the document
// is derived from the notes collection by filtering on Type, so the two
// can never fall out of sync.
type Store struct {
	Notes     []*Note     `json:"notes"`
	Tasks     []*Task     `json:"tasks"`
	Reminders []*Reminder `json:"reminders"`
	Settings  Settings    `json:"settings"`
}

// storeDocument is the on-disk shape, which keeps the original drawings
// array for compatibility with previously exported documents.
type storeDocument struct {
	Notes     []*Note     `json:"notes"`
	Tasks     []*Task     `json:"tasks"`
	Drawings  []*Note     `json:"drawings"`
	Reminders []*Reminder `json:"reminders"`
	Settings  Settings    `json:"settings"`
}

// DefaultStore returns an empty store with default settings.
func DefaultStore() *Store {
	return &Store{
		Notes:     []*Note{},
		Tasks:     []*Task{},
		Reminders: []*Reminder{},
		Settings:  DefaultSettings(),
	}
}

// Drawings returns the drawing-typed notes, most recent first.
func (s *Store) Drawings() []*Note {
	var drawings []*Note
	for _, n := range s.Notes {
		if n.IsDrawing() {
			drawings = append(drawings, n)
		}
	}
	return drawings
}

// FindNote returns the note with the given id, or nil.
func (s *Store) FindNote(id string) *Note {
	for _, n := range s.Notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// FindTask returns the task with the given id, or nil.
func (s *Store) FindTask(id string) *Task {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// FindReminder returns the reminder with the given id, or nil.
func (s *Store) FindReminder(id string) *Reminder {
	for _, r := range s.Reminders {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Normalize ensures all collections are non-nil and settings are complete.
func (s *Store) Normalize() {
	if s.Notes == nil {
		s.Notes = []*Note{}
	}
	if s.Tasks == nil {
		s.Tasks = []*Task{}
	}
	if s.Reminders == nil {
		s.Reminders = []*Reminder{}
	}
	s.Settings.Normalize()
}

// MarshalJSON writes the document shape, deriving the drawings array.
func (s *Store) MarshalJSON() ([]byte, error) {
	drawings := s.Drawings()
	if drawings == nil {
		drawings = []*Note{}
	}
	return json.Marshal(storeDocument{
		Notes:     s.Notes,
		Tasks:     s.Tasks,
		Drawings:  drawings,
		Reminders: s.Reminders,
		Settings:  s.Settings,
	})
}

// UnmarshalJSON reads the document shape. Drawings present only in the
// legacy drawings array are folded back into the notes collection.
func (s *Store) UnmarshalJSON(data []byte) error {
	var doc storeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	s.Notes = doc.Notes
	s.Tasks = doc.Tasks
	s.Reminders = doc.Reminders
	s.Settings = doc.Settings

	for _, d := range doc.Drawings {
		if d == nil || d.ID == "" {
			continue
		}
		if existing := s.FindNote(d.ID); existing != nil {
			existing.Type = NoteTypeDrawing
			continue
		}
		d.Type = NoteTypeDrawing
		s.Notes = append(s.Notes, d)
	}

	s.Normalize()
	return nil
}
