// Package model defines the domain models for NotePal.
package model

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// Database key constants.
const (
	// KeyDocument is the fixed key of the single persisted Store document.
	KeyDocument = "notepal:data"

	PrefixCache   = "cache"
	PrefixWebhook = "webhook"
)

// ItemType identifies what kind of item a reminder points at.
type ItemType string

const (
	ItemNote ItemType = "note"
	ItemTask ItemType = "task"
)

// IsValidItemType checks if an item type is valid.
func IsValidItemType(t string) bool {
	return t == string(ItemNote) || t == string(ItemTask)
}
