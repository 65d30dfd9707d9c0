// Package storage provides the database layer for NotePal.
package storage

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"

	"github.com/notepal/notepal/internal/errors"
)

const (
	// AppName is the application name used for data directories.
	AppName = "notepal"
)

// DB wraps a Badger database connection.
type DB struct {
	db   *badger.DB
	path string
	lock *FileLock
}

// Options configures the database connection.
type Options struct {
	// Path is the database directory path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// DefaultPath returns the default database path following XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Open opens or creates a database at the given path.
func Open(opts Options) (*DB, error) {
	var badgerOpts badger.Options
	path := ""

	if opts.InMemory || opts.Path == "" {
		// In-memory mode for testing
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		// Ensure directory exists
		if err := os.MkdirAll(opts.Path, 0755); err != nil {
			return nil, err
		}
		badgerOpts = badger.DefaultOptions(opts.Path)
		path = opts.Path
	}

	// Reduce logging noise
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	var lock *FileLock
	if path != "" {
		lock = NewFileLock(path)
		if err := lock.Acquire(); err != nil {
			if stderrors.Is(err, ErrLockAlreadyHeld) {
				return nil, errors.Wrap(errors.ErrLockHeld, err.Error())
			}
			return nil, err
		}
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		if lock != nil {
			lock.Release()
		}
		return nil, err
	}

	return &DB{db: db, path: path, lock: lock}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	err := d.db.Close()
	if d.lock != nil {
		if lerr := d.lock.Release(); err == nil {
			err = lerr
		}
	}
	return err
}

// Path returns the on-disk database directory, or "" for in-memory mode.
func (d *DB) Path() string {
	return d.path
}

// Badger returns the underlying Badger database for advanced operations.
func (d *DB) Badger() *badger.DB {
	return d.db
}
