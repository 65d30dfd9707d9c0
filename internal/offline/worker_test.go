package offline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notepal/notepal/internal/storage"
)

func testCache(t *testing.T) *storage.CacheRepo {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewCacheRepo(db)
}

// shellServer serves every manifest path with a recognizable body.
func shellServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("body of " + r.URL.Path))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestNewWorkerRejectsBadOrigin(t *testing.T) {
	cache := testCache(t)

	_, err := NewWorker(cache, "not a url ://")
	assert.Error(t, err)

	_, err = NewWorker(cache, "/relative/only")
	assert.Error(t, err)
}

func TestInstallCachesManifest(t *testing.T) {
	cache := testCache(t)
	srv, _ := shellServer(t)

	worker, err := NewWorker(cache, srv.URL)
	require.NoError(t, err)

	require.NoError(t, worker.Install(context.Background()))

	entries, err := cache.List(CacheVersion)
	require.NoError(t, err)
	assert.Len(t, entries, len(ShellManifest()))

	shell, err := cache.Get(CacheVersion, ShellPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("body of /index.html"), shell.Body)
}

func TestInstallAllOrNothing(t *testing.T) {
	cache := testCache(t)

	// One asset 404s; nothing may be cached.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/js/app.js" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	worker, err := NewWorker(cache, srv.URL)
	require.NoError(t, err)

	require.Error(t, worker.Install(context.Background()))

	entries, err := cache.List(CacheVersion)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchCacheFirst(t *testing.T) {
	cache := testCache(t)
	srv, hits := shellServer(t)

	worker, err := NewWorker(cache, srv.URL)
	require.NoError(t, err)
	require.NoError(t, worker.Install(context.Background()))

	installed := hits.Load()

	// A cached path is answered without touching the network.
	req := httptest.NewRequest(http.MethodGet, "/css/style.css", nil)
	entry, err := worker.Fetch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []byte("body of /css/style.css"), entry.Body)
	assert.Equal(t, installed, hits.Load())
}

func TestFetchMissGoesToNetworkAndCaches(t *testing.T) {
	cache := testCache(t)
	srv, _ := shellServer(t)

	worker, err := NewWorker(cache, srv.URL)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/extra/page.css", nil)
	entry, err := worker.Fetch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []byte("body of /extra/page.css"), entry.Body)

	// The 200 response was cached for next time.
	has, err := cache.Has(CacheVersion, "/extra/page.css")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestFetchErrorResponsesNotCached(t *testing.T) {
	cache := testCache(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	worker, err := NewWorker(cache, srv.URL)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	entry, err := worker.Fetch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, entry.Status)

	has, err := cache.Has(CacheVersion, "/missing")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestFetchCrossOriginPassthrough(t *testing.T) {
	cache := testCache(t)
	srv, hits := shellServer(t)

	external := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("external " + r.URL.Path))
	}))
	defer external.Close()

	worker, err := NewWorker(cache, srv.URL)
	require.NoError(t, err)
	require.NoError(t, worker.Install(context.Background()))
	installed := hits.Load()

	// An absolute URL on another host goes to that host, not the
	// worker's origin, even when the origin has the same path cached.
	req := httptest.NewRequest(http.MethodGet, external.URL+"/index.html", nil)
	entry, err := worker.Fetch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []byte("external /index.html"), entry.Body)
	assert.Equal(t, installed, hits.Load())

	// Cross-origin responses are never cached; the origin's entry
	// survives untouched.
	cachedShell, err := cache.Get(CacheVersion, "/index.html")
	require.NoError(t, err)
	assert.Equal(t, []byte("body of /index.html"), cachedShell.Body)
}

func TestNavigationFallsBackToShell(t *testing.T) {
	cache := testCache(t)
	srv, _ := shellServer(t)

	worker, err := NewWorker(cache, srv.URL)
	require.NoError(t, err)
	require.NoError(t, worker.Install(context.Background()))

	// Kill the network.
	srv.Close()

	// A navigation (Accept: text/html) to an uncached page gets the shell.
	req := httptest.NewRequest(http.MethodGet, "/notes/deep-link", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	entry, err := worker.Fetch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []byte("body of /index.html"), entry.Body)

	// A non-navigation request surfaces the network error instead.
	apiReq := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	apiReq.Header.Set("Accept", "application/json")
	_, err = worker.Fetch(context.Background(), apiReq)
	assert.Error(t, err)
}

func TestActivateDropsOtherVersions(t *testing.T) {
	cache := testCache(t)
	srv, _ := shellServer(t)

	require.NoError(t, cache.Put("notepal-cache-v0", &storage.CacheEntry{URL: "/", Status: 200}))

	worker, err := NewWorker(cache, srv.URL)
	require.NoError(t, err)
	require.NoError(t, worker.Install(context.Background()))

	dropped, err := worker.Activate()
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)

	versions, err := cache.Versions()
	require.NoError(t, err)
	assert.Equal(t, []string{CacheVersion}, versions)
}

func TestServeHTTPOffline(t *testing.T) {
	cache := testCache(t)
	srv, _ := shellServer(t)

	worker, err := NewWorker(cache, srv.URL)
	require.NoError(t, err)
	require.NoError(t, worker.Install(context.Background()))
	srv.Close()

	// Cached asset served with status, headers, and body.
	rec := httptest.NewRecorder()
	worker.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/manifest.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body of /manifest.json", rec.Body.String())
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))

	// Unreachable and uncached: 503.
	rec = httptest.NewRecorder()
	apiReq := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	apiReq.Header.Set("Accept", "application/json")
	worker.ServeHTTP(rec, apiReq)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSyncFuncHonorsContext(t *testing.T) {
	repo := testRepoForSync(t)
	syncFn := NewSyncFunc(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, syncFn(ctx), context.Canceled)
}
