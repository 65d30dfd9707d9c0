package offline

import (
	"context"
	"time"

	"github.com/notepal/notepal/internal/logging"
	"github.com/notepal/notepal/internal/repository"
)

// syncDelay simulates the round trip to a sync backend. There is no
// real backend yet; the job exists so the daemon wiring and the sync
// trigger path are exercised end to end.
const syncDelay = time.Second

// NewSyncFunc returns the background note-sync job for the daemon.
//
// TODO: replace the stub delay with a real backend push once the sync
// service exists.
func NewSyncFunc(repo *repository.Repository) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(syncDelay):
		}

		store := repo.Store()
		logging.Info("notes synced",
			logging.KeyCount, len(store.Notes),
			"tasks", len(store.Tasks))
		return nil
	}
}
