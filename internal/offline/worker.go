package offline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/notepal/notepal/internal/logging"
	"github.com/notepal/notepal/internal/storage"
)

// Worker serves shell resources cache-first. It answers from the cache
// when it can, falls back to the network, and degrades to the cached
// shell page for navigations when the network is gone.
type Worker struct {
	cache    *storage.CacheRepo
	origin   *url.URL
	client   *http.Client
	version  string
	manifest []string
}

// NewWorker creates a worker caching assets from the given origin,
// e.g. "https://notepal.example.com".
func NewWorker(cache *storage.CacheRepo, origin string) (*Worker, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("invalid origin %q: %w", origin, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("origin %q must include scheme and host", origin)
	}

	return &Worker{
		cache: cache,
		origin: u,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		version:  CacheVersion,
		manifest: ShellManifest(),
	}, nil
}

// Version returns the cache version this worker serves from.
func (w *Worker) Version() string {
	return w.version
}

// Install fetches every manifest asset and stores it under the current
// cache version. All-or-nothing: responses are staged in memory and
// only written once every fetch succeeded, so a failed install leaves
// the previous cache intact.
func (w *Worker) Install(ctx context.Context) error {
	staged := make([]*storage.CacheEntry, 0, len(w.manifest))

	for _, path := range w.manifest {
		entry, err := w.fetchFromNetwork(ctx, &url.URL{Path: path})
		if err != nil {
			return fmt.Errorf("install failed at %s: %w", path, err)
		}
		if entry.Status != http.StatusOK {
			return fmt.Errorf("install failed at %s: HTTP %d", path, entry.Status)
		}
		staged = append(staged, entry)
	}

	for _, entry := range staged {
		if err := w.cache.Put(w.version, entry); err != nil {
			return fmt.Errorf("failed to store %s: %w", entry.URL, err)
		}
	}

	logging.Info("shell installed",
		logging.KeyVersion, w.version,
		logging.KeyCount, len(staged))
	return nil
}

// Activate deletes every cached entry belonging to another cache
// version and returns how many entries were dropped.
func (w *Worker) Activate() (int, error) {
	deleted, err := w.cache.DropOtherVersions(w.version)
	if err != nil {
		return deleted, err
	}
	logging.Info("cache activated",
		logging.KeyVersion, w.version,
		"dropped", deleted)
	return deleted, nil
}

// Fetch resolves a request cache-first. A cache hit is served without
// touching the network. On a miss the network response is returned, and
// cached when it is a same-origin 200. When the network fails, a
// navigation request gets the cached shell page; anything else gets the
// error.
func (w *Worker) Fetch(ctx context.Context, req *http.Request) (*storage.CacheEntry, error) {
	path := req.URL.Path
	if path == "" {
		path = "/"
	}

	// Cross-origin requests bypass the cache entirely and go to their
	// own host untouched.
	same := w.sameOrigin(req.URL)

	if same {
		cached, err := w.cache.Get(w.version, path)
		if err == nil {
			logging.DebugLog("serving from cache", logging.KeyURL, path)
			return cached, nil
		}
		if !storage.IsErrKeyNotFound(err) {
			return nil, err
		}
	}

	entry, netErr := w.fetchFromNetwork(ctx, req.URL)
	if netErr != nil {
		if same && isNavigation(req) {
			shell, shellErr := w.cache.Get(w.version, ShellPath)
			if shellErr == nil {
				logging.DebugLog("network down, serving shell", logging.KeyURL, path)
				return shell, nil
			}
		}
		return nil, netErr
	}

	if entry.Status == http.StatusOK && same {
		if err := w.cache.Put(w.version, entry); err != nil {
			logging.Warn("failed to cache resource",
				logging.KeyURL, path, logging.KeyError, err)
		}
	}
	return entry, nil
}

// ServeHTTP exposes the worker as an HTTP handler for `notepal serve`.
func (w *Worker) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 30*time.Second)
	defer cancel()

	entry, err := w.Fetch(ctx, req)
	if err != nil {
		http.Error(rw, "resource unavailable offline", http.StatusServiceUnavailable)
		return
	}

	for key, values := range entry.Header {
		for _, v := range values {
			rw.Header().Add(key, v)
		}
	}
	rw.WriteHeader(entry.Status)
	_, _ = rw.Write(entry.Body)
}

// fetchFromNetwork requests a URL, resolving relative references against
// the worker's origin, and captures the response as a cache entry. An
// absolute URL is fetched from its own host.
func (w *Worker) fetchFromNetwork(ctx context.Context, u *url.URL) (*storage.CacheEntry, error) {
	target := u
	if !u.IsAbs() {
		target = w.origin.ResolveReference(u)
	}

	key := u.Path
	if key == "" {
		key = "/"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "NotePal/1.0")

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &storage.CacheEntry{
		URL:    key,
		Status: resp.StatusCode,
		Header: resp.Header.Clone(),
		Body:   body,
	}, nil
}

// sameOrigin reports whether the request URL belongs to the worker's
// origin. Relative request URLs count as same-origin.
func (w *Worker) sameOrigin(u *url.URL) bool {
	if u.Host == "" {
		return true
	}
	return u.Host == w.origin.Host && (u.Scheme == "" || u.Scheme == w.origin.Scheme)
}

// isNavigation reports whether the request is a page navigation, i.e.
// the client asked for HTML.
func isNavigation(req *http.Request) bool {
	return strings.Contains(req.Header.Get("Accept"), "text/html")
}
