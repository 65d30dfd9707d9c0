package storage

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/notepal/notepal/internal/model"
)

// CacheEntry is one cached shell resource: a stored HTTP response keyed
// by cache version and request URL.
type CacheEntry struct {
	Key      string      `json:"key"`
	URL      string      `json:"url"`
	Status   int         `json:"status"`
	Header   http.Header `json:"header"`
	Body     []byte      `json:"body"`
	StoredAt time.Time   `json:"stored_at"`
}

// SetKey sets the database key for this entry.
func (e *CacheEntry) SetKey(key string) {
	e.Key = key
}

// GetKey returns the database key for this entry.
func (e *CacheEntry) GetKey() string {
	return e.Key
}

// GenerateCacheKey generates a database key for a cached resource.
func GenerateCacheKey(version, url string) string {
	return fmt.Sprintf("%s:%s:%s", model.PrefixCache, version, url)
}

// CacheRepo stores cached shell resources, namespaced by cache version.
type CacheRepo struct {
	db *DB
}

// NewCacheRepo creates a new cache repository.
func NewCacheRepo(db *DB) *CacheRepo {
	return &CacheRepo{db: db}
}

// Put stores a response under the given cache version.
func (r *CacheRepo) Put(version string, entry *CacheEntry) error {
	entry.Key = GenerateCacheKey(version, entry.URL)
	if entry.StoredAt.IsZero() {
		entry.StoredAt = time.Now()
	}
	return r.db.Set(entry)
}

// Get retrieves a cached response, or ErrKeyNotFound on a miss.
func (r *CacheRepo) Get(version, url string) (*CacheEntry, error) {
	entry := &CacheEntry{}
	if err := r.db.Get(GenerateCacheKey(version, url), entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Has reports whether a resource is cached under the given version.
func (r *CacheRepo) Has(version, url string) (bool, error) {
	return r.db.Exists(GenerateCacheKey(version, url))
}

// List returns all entries cached under the given version.
func (r *CacheRepo) List(version string) ([]*CacheEntry, error) {
	prefix := fmt.Sprintf("%s:%s:", model.PrefixCache, version)
	return GetAllByPrefix(r.db, prefix, func() *CacheEntry {
		return &CacheEntry{}
	})
}

// Versions returns all cache versions with at least one entry.
func (r *CacheRepo) Versions() ([]string, error) {
	keys, err := r.db.ListByPrefix(model.PrefixCache + ":")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var versions []string
	for _, key := range keys {
		parts := strings.SplitN(key, ":", 3)
		if len(parts) < 3 || seen[parts[1]] {
			continue
		}
		seen[parts[1]] = true
		versions = append(versions, parts[1])
	}
	return versions, nil
}

// DropOtherVersions deletes every cached entry whose version does not
// match current. Returns the number of entries deleted.
func (r *CacheRepo) DropOtherVersions(current string) (int, error) {
	versions, err := r.Versions()
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, v := range versions {
		if v == current {
			continue
		}
		n, err := r.db.DeleteByPrefix(fmt.Sprintf("%s:%s:", model.PrefixCache, v))
		if err != nil {
			return deleted, err
		}
		deleted += n
	}
	return deleted, nil
}
