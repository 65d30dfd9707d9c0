package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notepal/notepal/internal/model"
)

func TestSweeperStartStop(t *testing.T) {
	repo := testRepo(t)
	sched := New(repo)
	defer sched.Stop()

	sweeper := NewSweeper(repo, sched, nil)
	require.NoError(t, sweeper.Start())

	// Both the minute sweep and the autosave job are scheduled.
	next := sweeper.NextRun()
	assert.False(t, next.IsZero())
	assert.True(t, next.After(time.Now().Add(-time.Second)))

	sweeper.Stop()
}

func TestSweeperMinuteSweepArmsUnarmed(t *testing.T) {
	repo := testRepo(t)
	sched := New(repo)
	defer sched.Stop()

	// A reminder written to the store without going through the running
	// scheduler, as another CLI invocation would.
	r := model.NewReminder("external", time.Now().Add(time.Hour), "", model.ItemNote)
	require.NoError(t, repo.AddReminder(r))
	assert.False(t, sched.Armed(r.ID))

	sweeper := NewSweeper(repo, sched, nil)
	sweeper.lastSweep = time.Now()
	sweeper.runMinuteSweep()

	assert.True(t, sched.Armed(r.ID))
}

func TestSweeperSkipsStaleSweep(t *testing.T) {
	repo := testRepo(t)
	sched := New(repo)
	defer sched.Stop()

	r := model.NewReminder("late", time.Now().Add(time.Hour), "", model.ItemNote)
	require.NoError(t, repo.AddReminder(r))

	// A sweep after a long gap (system slept) is skipped entirely.
	sweeper := NewSweeper(repo, sched, nil)
	sweeper.lastSweep = time.Now().Add(-2 * time.Hour)
	sweeper.runMinuteSweep()

	assert.False(t, sched.Armed(r.ID))
}

func TestSweeperAutosave(t *testing.T) {
	repo := testRepo(t)
	sched := New(repo)
	defer sched.Stop()

	sweeper := NewSweeper(repo, sched, nil)

	repo.Store().Settings.Theme = "sepia"
	sweeper.runAutosave()

	require.NoError(t, repo.Reload())
	assert.Equal(t, "sepia", repo.Settings().Theme)
}
