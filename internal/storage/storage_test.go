package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notepal/notepal/internal/model"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// =============================================================================
// CRUD Tests
// =============================================================================

func TestSetBytesGetBytes(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.SetBytes("k1", []byte("hello")))

	data, err := db.GetBytes("k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestGetBytesNotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.GetBytes("missing")
	assert.True(t, IsErrKeyNotFound(err))
}

func TestExists(t *testing.T) {
	db := testDB(t)

	ok, err := db.Exists("k1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.SetBytes("k1", []byte("x")))

	ok, err = db.Exists("k1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteByPrefix(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.SetBytes("cache:v1:/a", []byte("a")))
	require.NoError(t, db.SetBytes("cache:v1:/b", []byte("b")))
	require.NoError(t, db.SetBytes("cache:v2:/a", []byte("c")))

	count, err := db.DeleteByPrefix("cache:v1:")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	keys, err := db.ListByPrefix("cache:")
	require.NoError(t, err)
	assert.Equal(t, []string{"cache:v2:/a"}, keys)
}

// =============================================================================
// Document Store Tests
// =============================================================================

func TestDocumentLoadDefault(t *testing.T) {
	db := testDB(t)
	docs := NewDocumentStore(db)

	// No document yet: Load yields the built-in defaults.
	store, err := docs.Load()
	require.NoError(t, err)
	assert.Empty(t, store.Notes)
	assert.Empty(t, store.Tasks)
	assert.Equal(t, "light", store.Settings.Theme)
}

func TestDocumentSaveLoadRoundTrip(t *testing.T) {
	db := testDB(t)
	docs := NewDocumentStore(db)

	store := model.DefaultStore()
	store.Notes = append(store.Notes, model.NewNote("a", "body"))
	store.Tasks = append(store.Tasks, model.NewTask("b"))
	store.Settings.Theme = "dark"

	require.NoError(t, docs.Save(store))

	loaded, err := docs.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.Notes, 1)
	assert.Len(t, loaded.Tasks, 1)
	assert.Equal(t, "dark", loaded.Settings.Theme)
}

func TestDocumentLoadCorrupt(t *testing.T) {
	db := testDB(t)
	docs := NewDocumentStore(db)

	require.NoError(t, db.SetBytes(model.KeyDocument, []byte("{not json")))

	_, err := docs.Load()
	require.Error(t, err)
}

func TestDocumentImport(t *testing.T) {
	db := testDB(t)
	docs := NewDocumentStore(db)

	raw := `{
		"notes": [{"id": "n1", "title": "imported", "type": "note"}],
		"tasks": [{"id": "t1", "title": "todo"}]
	}`

	store, err := docs.Import([]byte(raw))
	require.NoError(t, err)
	assert.Len(t, store.Notes, 1)
	assert.Len(t, store.Tasks, 1)
	// Missing settings are back-filled.
	assert.Equal(t, "light", store.Settings.Theme)

	// The import was persisted.
	loaded, err := docs.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.Notes, 1)
}

func TestDocumentImportRejectsMissingCollections(t *testing.T) {
	db := testDB(t)
	docs := NewDocumentStore(db)

	// Seed existing data so we can verify it survives a failed import.
	existing := model.DefaultStore()
	existing.Notes = append(existing.Notes, model.NewNote("keep", ""))
	require.NoError(t, docs.Save(existing))

	tests := []struct {
		name string
		raw  string
	}{
		{"not_json", `nope`},
		{"missing_notes", `{"tasks": []}`},
		{"missing_tasks", `{"notes": []}`},
		{"notes_not_array", `{"notes": {}, "tasks": []}`},
		{"tasks_not_array", `{"notes": [], "tasks": "x"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := docs.Import([]byte(tc.raw))
			require.Error(t, err)
		})
	}

	// The persisted store is untouched after every rejection.
	loaded, err := docs.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Notes, 1)
	assert.Equal(t, "keep", loaded.Notes[0].Title)
}

func TestDocumentExport(t *testing.T) {
	db := testDB(t)
	docs := NewDocumentStore(db)

	store := model.DefaultStore()
	store.Notes = append(store.Notes, model.NewDrawing("sketch", "data:x"))

	data, err := docs.Export(store)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"drawings"`)
	assert.Contains(t, string(data), "sketch")
}

// =============================================================================
// Cache Repo Tests
// =============================================================================

func TestCacheRepoPutGet(t *testing.T) {
	db := testDB(t)
	cache := NewCacheRepo(db)

	entry := &CacheEntry{URL: "/index.html", Status: 200, Body: []byte("<html>")}
	require.NoError(t, cache.Put("v1", entry))
	assert.False(t, entry.StoredAt.IsZero())

	got, err := cache.Get("v1", "/index.html")
	require.NoError(t, err)
	assert.Equal(t, 200, got.Status)
	assert.Equal(t, []byte("<html>"), got.Body)

	_, err = cache.Get("v2", "/index.html")
	assert.True(t, IsErrKeyNotFound(err))
}

func TestCacheRepoVersions(t *testing.T) {
	db := testDB(t)
	cache := NewCacheRepo(db)

	require.NoError(t, cache.Put("v1", &CacheEntry{URL: "/a", Status: 200}))
	require.NoError(t, cache.Put("v1", &CacheEntry{URL: "/b", Status: 200}))
	require.NoError(t, cache.Put("v2", &CacheEntry{URL: "/a", Status: 200}))

	versions, err := cache.Versions()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"v1", "v2"}, versions)
}

func TestCacheRepoDropOtherVersions(t *testing.T) {
	db := testDB(t)
	cache := NewCacheRepo(db)

	require.NoError(t, cache.Put("v1", &CacheEntry{URL: "/a", Status: 200}))
	require.NoError(t, cache.Put("v1", &CacheEntry{URL: "/b", Status: 200}))
	require.NoError(t, cache.Put("v2", &CacheEntry{URL: "/a", Status: 200}))

	dropped, err := cache.DropOtherVersions("v2")
	require.NoError(t, err)
	assert.Equal(t, 2, dropped)

	// Current version survives.
	_, err = cache.Get("v2", "/a")
	require.NoError(t, err)

	_, err = cache.Get("v1", "/a")
	assert.True(t, IsErrKeyNotFound(err))
}

// =============================================================================
// Webhook Repo Tests
// =============================================================================

func TestWebhookRepoCRUD(t *testing.T) {
	db := testDB(t)
	repo := NewWebhookRepo(db)

	w := model.NewWebhook("phone", "https://ntfy.example.com/notepal")
	require.NoError(t, repo.Create(w))

	got, err := repo.Get("phone")
	require.NoError(t, err)
	assert.Equal(t, w.URL, got.URL)
	assert.True(t, got.Enabled)

	got.Enabled = false
	require.NoError(t, repo.Update(got))

	enabled, err := repo.ListEnabled()
	require.NoError(t, err)
	assert.Empty(t, enabled)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete("phone"))
	_, err = repo.Get("phone")
	assert.Error(t, err)
}

func TestWebhookRepoUpdateLastUsed(t *testing.T) {
	db := testDB(t)
	repo := NewWebhookRepo(db)

	require.NoError(t, repo.Create(model.NewWebhook("hook", "https://example.com/x")))

	require.NoError(t, repo.UpdateLastUsed("hook", nil))
	got, err := repo.Get("hook")
	require.NoError(t, err)
	assert.False(t, got.LastUsed.IsZero())
	assert.Empty(t, got.LastError)

	require.NoError(t, repo.UpdateLastUsed("hook", assert.AnError))
	got, err = repo.Get("hook")
	require.NoError(t, err)
	assert.NotEmpty(t, got.LastError)
}

// Ensure StoredAt survives the round trip for cache entries written in
// the past, e.g. by an earlier process.
func TestCacheRepoPreservesStoredAt(t *testing.T) {
	db := testDB(t)
	cache := NewCacheRepo(db)

	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, cache.Put("v1", &CacheEntry{URL: "/a", Status: 200, StoredAt: old}))

	got, err := cache.Get("v1", "/a")
	require.NoError(t, err)
	assert.Equal(t, old.Unix(), got.StoredAt.Unix())
}
