package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteType distinguishes text notes from drawings.
type NoteType string

const (
	// NoteTypeText is a rich-text note.
	NoteTypeText NoteType = "note"
	// NoteTypeDrawing is a note whose content is an image data URI.
	NoteTypeDrawing NoteType = "drawing"
)

// Note represents a note or a drawing. Drawings are notes whose Content
// holds image data instead of markup; they are distinguished only by Type,
// and the drawings list in the persisted document is derived from this
// single collection.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" validate:"max=200"`
	Content   string    `json:"content"`
	Type      NoteType  `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsDrawing returns true if this note is a drawing.
func (n *Note) IsDrawing() bool {
	return n.Type == NoteTypeDrawing
}

// Touch refreshes the UpdatedAt timestamp.
func (n *Note) Touch() {
	n.UpdatedAt = time.Now()
}

// ShortID returns the first 8 characters of the id for display.
func (n *Note) ShortID() string {
	if len(n.ID) > 8 {
		return n.ID[:8]
	}
	return n.ID
}

// MatchesTerm reports whether the note matches a lowercased search term.
func (n *Note) MatchesTerm(term string) bool {
	return containsFold(n.Title, term) || containsFold(n.Content, term)
}

// NewNote creates a new text note.
func NewNote(title, content string) *Note {
	now := time.Now()
	return &Note{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Type:      NoteTypeText,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewDrawing creates a new drawing note. Content is an image data URI.
func NewDrawing(title, dataURI string) *Note {
	n := NewNote(title, dataURI)
	n.Type = NoteTypeDrawing
	return n
}
