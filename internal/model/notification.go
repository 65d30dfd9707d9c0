package model

import (
	"time"
)

// NotificationType defines the type of notification.
type NotificationType string

// Notification types.
const (
	NotifyReminder NotificationType = "reminder"
	NotifyPush     NotificationType = "push"
	NotifySync     NotificationType = "sync"
	NotifyTest     NotificationType = "test"
)

// Notification represents a notification to be delivered by the external
// notifier. For reminders, ItemID and ItemType carry the deep link back
// to the note or task that the reminder points at.
type Notification struct {
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	URL       string           `json:"url,omitempty"`
	ItemID    string           `json:"itemId,omitempty"`
	ItemType  ItemType         `json:"itemType,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// NewNotification creates a new notification.
func NewNotification(t NotificationType, title, body string) *Notification {
	return &Notification{
		Type:      t,
		Title:     title,
		Body:      body,
		Timestamp: time.Now(),
	}
}

// WithItem attaches the item reference used for deep-linking.
func (n *Notification) WithItem(itemType ItemType, itemID string) *Notification {
	n.ItemType = itemType
	n.ItemID = itemID
	return n
}

// WithURL sets the target URL opened when the notification is clicked.
func (n *Notification) WithURL(url string) *Notification {
	n.URL = url
	return n
}

// ReminderNotification builds the notification emitted when a reminder
// fires: title plus the item reference for display and deep-linking.
func ReminderNotification(r *Reminder) *Notification {
	return NewNotification(NotifyReminder, r.Title,
		"Reminder for your "+string(r.ItemType)).
		WithItem(r.ItemType, r.ItemID)
}

// DefaultPushNotification is the fallback used when a push payload is
// missing or malformed.
func DefaultPushNotification() *Notification {
	return NewNotification(NotifyPush, "NotePal", "You have a new notification").
		WithURL("/")
}
