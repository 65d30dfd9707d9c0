package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notepal/notepal/internal/model"
	"github.com/notepal/notepal/internal/repository"
	"github.com/notepal/notepal/internal/storage"
)

func testRepo(t *testing.T) *repository.Repository {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := repository.New(storage.NewDocumentStore(db))
	require.NoError(t, err)
	return repo
}

// recordingNotifier captures delivered notifications.
type recordingNotifier struct {
	mu       sync.Mutex
	received []*model.Notification
}

func (n *recordingNotifier) Notify(ctx context.Context, notif *model.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.received = append(n.received, notif)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.received)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}

func TestSchedulePastReminderDropped(t *testing.T) {
	repo := testRepo(t)
	s := New(repo)
	defer s.Stop()

	r := model.NewReminder("old", time.Now().Add(-time.Minute), "", model.ItemNote)
	require.NoError(t, repo.AddReminder(r))

	// Past reminders never fire late; the record is untouched.
	assert.False(t, s.Schedule(r))
	assert.False(t, s.Armed(r.ID))
	assert.Equal(t, model.ReminderScheduled, repo.GetReminder(r.ID).State)
}

func TestScheduleFiredReminderDropped(t *testing.T) {
	repo := testRepo(t)
	s := New(repo)
	defer s.Stop()

	r := model.NewReminder("done", time.Now().Add(time.Hour), "", model.ItemNote)
	r.State = model.ReminderFired

	assert.False(t, s.Schedule(r))
	assert.False(t, s.Schedule(nil))
}

func TestFireMarksFiredAndNotifies(t *testing.T) {
	repo := testRepo(t)
	s := New(repo)
	defer s.Stop()

	notifier := &recordingNotifier{}
	s.SetNotifier(notifier)

	r := model.NewReminder("soon", time.Now().Add(50*time.Millisecond), "", model.ItemNote)
	require.NoError(t, repo.AddReminder(r))
	require.True(t, s.Schedule(r))
	assert.True(t, s.Armed(r.ID))

	waitFor(t, func() bool { return notifier.count() == 1 })

	got := repo.GetReminder(r.ID)
	assert.Equal(t, model.ReminderFired, got.State)
	assert.False(t, s.Armed(r.ID))

	// Non-recurring: no successor appears.
	assert.Len(t, repo.Reminders(), 1)
}

func TestFireRecurringArmsSuccessor(t *testing.T) {
	repo := testRepo(t)
	s := New(repo)
	defer s.Stop()

	notifier := &recordingNotifier{}
	s.SetNotifier(notifier)

	r := model.NewReminder("daily", time.Now().Add(50*time.Millisecond), "", model.ItemTask)
	r.Repeat = model.RepeatDaily
	require.NoError(t, repo.AddReminder(r))
	require.True(t, s.Schedule(r))

	waitFor(t, func() bool { return notifier.count() == 1 })
	waitFor(t, func() bool { return len(repo.Reminders()) == 2 })

	// The fired record stays; exactly one fresh successor is added.
	fired := repo.GetReminder(r.ID)
	assert.Equal(t, model.ReminderFired, fired.State)

	pending := repo.PendingReminders()
	require.Len(t, pending, 1)
	next := pending[0]
	assert.NotEqual(t, r.ID, next.ID)
	assert.Equal(t, model.RepeatDaily, next.Repeat)
	assert.WithinDuration(t, r.DateTime.AddDate(0, 0, 1), next.DateTime, time.Second)
	assert.True(t, s.Armed(next.ID))
}

func TestCancelStopsTimer(t *testing.T) {
	repo := testRepo(t)
	s := New(repo)
	defer s.Stop()

	notifier := &recordingNotifier{}
	s.SetNotifier(notifier)

	r := model.NewReminder("cancelled", time.Now().Add(60*time.Millisecond), "", model.ItemNote)
	require.NoError(t, repo.AddReminder(r))
	require.True(t, s.Schedule(r))

	s.Cancel(r.ID)
	assert.False(t, s.Armed(r.ID))

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 0, notifier.count())
	assert.Equal(t, model.ReminderScheduled, repo.GetReminder(r.ID).State)
}

func TestFireDeletedReminderIsNoOp(t *testing.T) {
	repo := testRepo(t)
	s := New(repo)
	defer s.Stop()

	notifier := &recordingNotifier{}
	s.SetNotifier(notifier)

	r := model.NewReminder("gone", time.Now().Add(50*time.Millisecond), "", model.ItemNote)
	require.NoError(t, repo.AddReminder(r))
	require.True(t, s.Schedule(r))

	// Delete from the store but leave the timer armed.
	_, err := repo.DeleteReminder(r.ID)
	require.NoError(t, err)

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 0, notifier.count())
}

func TestArmAll(t *testing.T) {
	repo := testRepo(t)
	s := New(repo)
	defer s.Stop()

	future := model.NewReminder("future", time.Now().Add(time.Hour), "", model.ItemNote)
	past := model.NewReminder("past", time.Now().Add(-time.Hour), "", model.ItemNote)
	fired := model.NewReminder("fired", time.Now().Add(time.Hour), "", model.ItemNote)
	fired.State = model.ReminderFired

	require.NoError(t, repo.AddReminder(future))
	require.NoError(t, repo.AddReminder(past))
	require.NoError(t, repo.AddReminder(fired))

	assert.Equal(t, 1, s.ArmAll())
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.Armed(future.ID))
}

func TestRescheduleResetsTimer(t *testing.T) {
	repo := testRepo(t)
	s := New(repo)
	defer s.Stop()

	r := model.NewReminder("moved", time.Now().Add(time.Hour), "", model.ItemNote)
	require.NoError(t, repo.AddReminder(r))

	require.True(t, s.Schedule(r))
	require.True(t, s.Schedule(r))
	assert.Equal(t, 1, s.Count())
}
