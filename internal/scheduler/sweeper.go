package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/notepal/notepal/internal/logging"
	"github.com/notepal/notepal/internal/repository"
)

// SyncFunc pushes local notes to a sync backend.
type SyncFunc func(ctx context.Context) error

// Sweeper runs the daemon's periodic jobs: re-arming reminders created
// outside the running process, autosaving the store, and the background
// note sync.
type Sweeper struct {
	cron   *cron.Cron
	repo   *repository.Repository
	sched  *Scheduler
	syncFn SyncFunc

	mu        sync.Mutex
	lastSweep time.Time
}

// NewSweeper creates a sweeper; syncFn may be nil to disable the sync job.
func NewSweeper(repo *repository.Repository, sched *Scheduler, syncFn SyncFunc) *Sweeper {
	return &Sweeper{
		cron:   cron.New(cron.WithSeconds()),
		repo:   repo,
		sched:  sched,
		syncFn: syncFn,
	}
}

// Start registers the periodic jobs and starts the cron loop. The
// autosave cadence comes from the store's autoSaveInterval setting.
func (s *Sweeper) Start() error {
	s.lastSweep = time.Now()

	_, err := s.cron.AddFunc("0 * * * * *", s.runMinuteSweep)
	if err != nil {
		return fmt.Errorf("failed to add minute sweep: %w", err)
	}

	interval := s.repo.Settings().AutoSaveInterval
	if interval <= 0 {
		interval = 30
	}
	_, err = s.cron.AddFunc(fmt.Sprintf("@every %ds", interval), s.runAutosave)
	if err != nil {
		return fmt.Errorf("failed to add autosave job: %w", err)
	}

	if s.syncFn != nil {
		_, err = s.cron.AddFunc("0 */5 * * * *", s.runSync)
		if err != nil {
			return fmt.Errorf("failed to add sync job: %w", err)
		}
	}

	s.cron.Start()
	logging.DebugLog("sweeper started", "autoSaveInterval", interval)
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	logging.DebugLog("sweeper stopped")
}

// runMinuteSweep reloads the document and arms any scheduled reminders
// that have no timer yet.
func (s *Sweeper) runMinuteSweep() {
	s.mu.Lock()
	elapsed := time.Since(s.lastSweep)
	s.lastSweep = time.Now()
	s.mu.Unlock()

	// Skip if system was sleeping (gap > 1 hour)
	if elapsed > time.Hour {
		logging.DebugLog("skipping stale sweep after sleep",
			"elapsed", elapsed.Round(time.Second).String())
		return
	}

	if err := s.repo.Reload(); err != nil {
		logging.Warn("sweep reload failed", logging.KeyError, err)
		return
	}

	for _, r := range s.repo.PendingReminders() {
		if !s.sched.Armed(r.ID) {
			s.sched.Schedule(r)
		}
	}
}

// runAutosave flushes the in-memory store.
func (s *Sweeper) runAutosave() {
	if err := s.repo.Save(); err != nil {
		logging.Warn("autosave failed", logging.KeyError, err)
	}
}

// runSync pushes local notes to the sync backend.
func (s *Sweeper) runSync() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.syncFn(ctx); err != nil {
		logging.Warn("note sync failed", logging.KeyError, err)
	}
}

// NextRun returns the next scheduled run time for any job.
func (s *Sweeper) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}

	next := entries[0].Next
	for _, e := range entries[1:] {
		if e.Next.Before(next) {
			next = e.Next
		}
	}
	return next
}
