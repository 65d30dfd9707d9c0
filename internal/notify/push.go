package notify

import (
	"encoding/json"

	"github.com/notepal/notepal/internal/model"
)

// pushPayload is the JSON body an incoming push message may carry.
type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// ParsePushPayload decodes an incoming push message body into a
// notification. A missing or malformed body yields the default
// notification rather than an error, so a bad push still surfaces.
func ParsePushPayload(data []byte) *model.Notification {
	n := model.DefaultPushNotification()

	if len(data) == 0 {
		return n
	}

	var payload pushPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return n
	}

	if payload.Title != "" {
		n.Title = payload.Title
	}
	if payload.Body != "" {
		n.Body = payload.Body
	}
	if payload.URL != "" {
		n.URL = payload.URL
	}
	return n
}
