package offline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notepal/notepal/internal/repository"
	"github.com/notepal/notepal/internal/storage"
)

func testRepoForSync(t *testing.T) *repository.Repository {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := repository.New(storage.NewDocumentStore(db))
	require.NoError(t, err)
	return repo
}

func TestSyncFuncCompletes(t *testing.T) {
	repo := testRepoForSync(t)
	syncFn := NewSyncFunc(repo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, syncFn(ctx))
}
