package model

import (
	"fmt"
	"regexp"
	"time"
)

// Webhook represents a notification endpoint. Reminder firings and sync
// results are posted to every enabled webhook as a JSON payload.
type Webhook struct {
	Key       string    `json:"key"`
	Name      string    `json:"name" validate:"required,max=50"`
	URL       string    `json:"url" validate:"required,url"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	LastUsed  time.Time `json:"last_used,omitempty"`
	LastError string    `json:"last_error,omitempty"`
}

// SetKey sets the database key for this webhook.
func (w *Webhook) SetKey(key string) {
	w.Key = key
}

// GetKey returns the database key for this webhook.
func (w *Webhook) GetKey() string {
	return w.Key
}

// MaskedURL returns the URL with sensitive parts masked.
func (w *Webhook) MaskedURL() string {
	if len(w.URL) > 40 {
		return w.URL[:30] + "***"
	}
	return w.URL
}

// GenerateWebhookKey generates a database key for a webhook.
func GenerateWebhookKey(name string) string {
	return fmt.Sprintf("%s:%s", PrefixWebhook, name)
}

// NewWebhook creates a new enabled webhook.
func NewWebhook(name, url string) *Webhook {
	return &Webhook{
		Key:       GenerateWebhookKey(name),
		Name:      name,
		URL:       url,
		Enabled:   true,
		CreatedAt: time.Now(),
	}
}

// webhookNameRegex validates webhook names (alphanumeric, dash, underscore).
var webhookNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// IsValidWebhookName checks if a webhook name is valid.
func IsValidWebhookName(name string) bool {
	if len(name) == 0 || len(name) > 50 {
		return false
	}
	return webhookNameRegex.MatchString(name)
}
