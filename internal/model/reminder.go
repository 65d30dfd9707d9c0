package model

import (
	"time"

	"github.com/google/uuid"
)

// Repeat rules for reminders.
const (
	RepeatNone    = "none"
	RepeatDaily   = "daily"
	RepeatWeekly  = "weekly"
	RepeatMonthly = "monthly"
	RepeatCustom  = "custom"
)

// Reminder lifecycle states. A reminder is armed only while scheduled;
// once fired it stays in the store as a record of the occurrence and is
// never re-armed.
const (
	ReminderScheduled = "scheduled"
	ReminderFired     = "fired"
)

// Reminder represents one scheduled firing, possibly one occurrence of a
// repeating series. It references a note or task by id with no
// back-reference; the target may be deleted out from under it.
type Reminder struct {
	ID               string    `json:"id"`
	Title            string    `json:"title" validate:"max=200"`
	DateTime         time.Time `json:"dateTime"`
	Repeat           string    `json:"repeat"`
	CustomRepeatDays int       `json:"customRepeatDays,omitempty"`
	ItemID           string    `json:"itemId"`
	ItemType         ItemType  `json:"itemType"`
	State            string    `json:"state"`
	CreatedAt        time.Time `json:"createdAt"`
}

// IsScheduled returns true if the reminder has not fired yet.
func (r *Reminder) IsScheduled() bool {
	// Legacy documents predate the state field; treat absent as scheduled.
	return r.State == ReminderScheduled || r.State == ""
}

// IsRecurring returns true if the reminder repeats.
func (r *Reminder) IsRecurring() bool {
	return r.Repeat != "" && r.Repeat != RepeatNone
}

// NextDateTime calculates when the next occurrence of a recurring
// reminder is due, relative to the current DateTime.
func (r *Reminder) NextDateTime() time.Time {
	switch r.Repeat {
	case RepeatDaily:
		return r.DateTime.AddDate(0, 0, 1)
	case RepeatWeekly:
		return r.DateTime.AddDate(0, 0, 7)
	case RepeatMonthly:
		return r.DateTime.AddDate(0, 1, 0)
	case RepeatCustom:
		return r.DateTime.AddDate(0, 0, r.CustomRepeatDays)
	default:
		return r.DateTime
	}
}

// NextOccurrence creates the successor record for a recurring reminder.
// The successor gets a fresh id; the fired original stays in the store.
func (r *Reminder) NextOccurrence() *Reminder {
	if !r.IsRecurring() {
		return nil
	}
	return &Reminder{
		ID:               uuid.New().String(),
		Title:            r.Title,
		DateTime:         r.NextDateTime(),
		Repeat:           r.Repeat,
		CustomRepeatDays: r.CustomRepeatDays,
		ItemID:           r.ItemID,
		ItemType:         r.ItemType,
		State:            ReminderScheduled,
		CreatedAt:        time.Now(),
	}
}

// TimeUntil returns the duration until the reminder is due.
func (r *Reminder) TimeUntil() time.Duration {
	return time.Until(r.DateTime)
}

// ShortID returns the first 8 characters of the id for display.
func (r *Reminder) ShortID() string {
	if len(r.ID) > 8 {
		return r.ID[:8]
	}
	return r.ID
}

// ValidRepeatRules returns the valid repeat rule options.
func ValidRepeatRules() []string {
	return []string{RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatCustom}
}

// IsValidRepeatRule checks if a repeat rule is valid.
func IsValidRepeatRule(rule string) bool {
	for _, valid := range ValidRepeatRules() {
		if rule == valid {
			return true
		}
	}
	return false
}

// NewReminder creates a new scheduled reminder for a note or task.
func NewReminder(title string, dateTime time.Time, itemID string, itemType ItemType) *Reminder {
	return &Reminder{
		ID:        uuid.New().String(),
		Title:     title,
		DateTime:  dateTime,
		Repeat:    RepeatNone,
		ItemID:    itemID,
		ItemType:  itemType,
		State:     ReminderScheduled,
		CreatedAt: time.Now(),
	}
}
