package notify

import (
	"encoding/json"

	"github.com/notepal/notepal/internal/model"
)

// Formatter converts a notification into a webhook payload.
type Formatter interface {
	// Format converts a notification into the wire payload.
	Format(n *model.Notification) ([]byte, error)

	// ContentType returns the HTTP Content-Type for the payload.
	ContentType() string
}

// JSONFormatter produces the plain JSON payload webhooks receive.
type JSONFormatter struct{}

// jsonPayload is the wire shape sent to webhooks.
type jsonPayload struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	URL       string `json:"url,omitempty"`
	ItemID    string `json:"itemId,omitempty"`
	ItemType  string `json:"itemType,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Format converts a notification to its JSON payload.
func (f *JSONFormatter) Format(n *model.Notification) ([]byte, error) {
	payload := jsonPayload{
		Type:      string(n.Type),
		Title:     n.Title,
		Body:      n.Body,
		URL:       n.URL,
		ItemID:    n.ItemID,
		ItemType:  string(n.ItemType),
		Timestamp: n.Timestamp.Format("2006-01-02T15:04:05Z"),
	}
	return json.Marshal(payload)
}

// ContentType returns the content type for JSON payloads.
func (f *JSONFormatter) ContentType() string {
	return "application/json"
}
