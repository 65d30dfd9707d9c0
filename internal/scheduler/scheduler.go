// Package scheduler arms one-shot timers for reminders and re-arms
// recurring ones when they fire.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/notepal/notepal/internal/logging"
	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/notify"
	"github.com/notepal/notepal/internal/repository"
)

// Scheduler owns one timer per scheduled reminder. All methods are safe
// for concurrent use.
type Scheduler struct {
	repo     *repository.Repository
	notifier notify.Notifier

	mu     sync.Mutex
	timers map[string]*time.Timer

	// now is swappable for tests.
	now func() time.Time
}

// New creates a scheduler over the given repository. Notifications go
// to the terminal unless SetNotifier is called.
func New(repo *repository.Repository) *Scheduler {
	return &Scheduler{
		repo:     repo,
		notifier: notify.NewTerminalNotifier(),
		timers:   make(map[string]*time.Timer),
		now:      time.Now,
	}
}

// SetNotifier replaces the delivery channel.
func (s *Scheduler) SetNotifier(n notify.Notifier) {
	s.notifier = n
}

// Schedule arms a timer for the reminder. A reminder whose time is
// already past is dropped, never fired late: the caller sees false and
// the record stays in the store untouched.
func (s *Scheduler) Schedule(r *model.Reminder) bool {
	if r == nil || !r.IsScheduled() {
		return false
	}

	delay := r.DateTime.Sub(s.now())
	if delay <= 0 {
		logging.DebugLog("reminder in the past, not arming",
			logging.KeyReminderID, r.ID)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-scheduling an armed reminder resets its timer.
	if t, ok := s.timers[r.ID]; ok {
		t.Stop()
	}

	id := r.ID
	s.timers[id] = time.AfterFunc(delay, func() {
		s.fire(id)
	})

	logging.DebugLog("reminder armed",
		logging.KeyReminderID, r.ID,
		"delay", delay.Round(time.Second).String())
	return true
}

// ArmAll arms every scheduled reminder in the store and returns how
// many timers were set. Past-due reminders are skipped.
func (s *Scheduler) ArmAll() int {
	armed := 0
	for _, r := range s.repo.PendingReminders() {
		if s.Schedule(r) {
			armed++
		}
	}
	logging.DebugLog("reminders armed", logging.KeyCount, armed)
	return armed
}

// Cancel stops the timer for a reminder, typically after the reminder
// was deleted. Cancelling an unknown id is a no-op.
func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// Stop cancels every armed timer.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// Armed reports whether a timer is currently set for the reminder.
func (s *Scheduler) Armed(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.timers[id]
	return ok
}

// Count returns the number of armed timers.
func (s *Scheduler) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.timers)
}

// fire marks the reminder as fired, delivers the notification, and arms
// the successor occurrence for recurring reminders. The fired record
// stays in the store; only the fresh successor is scheduled.
func (s *Scheduler) fire(id string) {
	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()

	r := s.repo.GetReminder(id)
	if r == nil || !r.IsScheduled() {
		// Deleted or already fired by another path; nothing to do.
		return
	}

	r.State = model.ReminderFired
	if err := s.repo.UpdateReminder(r); err != nil {
		logging.Error("failed to persist fired reminder",
			logging.KeyReminderID, id, logging.KeyError, err)
	}

	n := model.ReminderNotification(r)
	if err := s.notifier.Notify(context.Background(), n); err != nil {
		logging.Warn("reminder notification failed",
			logging.KeyReminderID, id, logging.KeyError, err)
	}

	next := r.NextOccurrence()
	if next == nil {
		return
	}
	if err := s.repo.AddReminder(next); err != nil {
		logging.Error("failed to persist recurring successor",
			logging.KeyReminderID, next.ID, logging.KeyError, err)
		return
	}
	s.Schedule(next)
	logging.Info("recurring reminder re-armed",
		logging.KeyReminderID, next.ID,
		"at", next.DateTime.Format(time.RFC3339))
}
