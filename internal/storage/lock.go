package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// LockFileName is the name of the lock file in the data directory.
	LockFileName = "notepal.lock"
)

var (
	// ErrLockAcquireFailed is returned when the lock cannot be acquired.
	ErrLockAcquireFailed = errors.New("failed to acquire database lock")
	// ErrLockAlreadyHeld is returned when another process holds the lock.
	ErrLockAlreadyHeld = errors.New("database is locked by another process")
)

// FileLock represents a file-based lock for preventing concurrent access
// to the on-disk database from two notepal processes.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a new file lock at the specified directory.
func NewFileLock(dir string) *FileLock {
	return &FileLock{
		path: filepath.Join(dir, LockFileName),
	}
}

// Acquire attempts to acquire the lock.
// It returns an error if the lock is already held by another process.
func (l *FileLock) Acquire() error {
	// Check for stale lock first
	if err := l.cleanStaleLock(); err != nil {
		return err
	}

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLockAcquireFailed, err)
	}

	if err := flockAcquire(file); err != nil {
		file.Close()
		if errors.Is(err, ErrLockAlreadyHeld) {
			if pid := l.readPID(); pid > 0 {
				return fmt.Errorf("%w: PID %d", ErrLockAlreadyHeld, pid)
			}
		}
		return err
	}

	// Record our PID for better error messages from the next process.
	if err := file.Truncate(0); err == nil {
		if _, err := file.Seek(0, 0); err == nil {
			fmt.Fprintf(file, "%d", os.Getpid())
			file.Sync()
		}
	}

	l.file = file
	return nil
}

// Release releases the lock.
func (l *FileLock) Release() error {
	if l.file == nil {
		return nil
	}

	if err := flockRelease(l.file); err != nil {
		l.file.Close()
		return err
	}

	if err := l.file.Close(); err != nil {
		return err
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return err
	}

	l.file = nil
	return nil
}

// cleanStaleLock removes the lock file if its owner is no longer running.
func (l *FileLock) cleanStaleLock() error {
	pid := l.readPID()
	if pid <= 0 {
		return nil
	}

	if isProcessRunning(pid) {
		return nil
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clean stale lock: %v", err)
	}
	return nil
}

// readPID reads the PID from the lock file.
// Returns 0 if the file doesn't exist or doesn't contain a valid PID.
func (l *FileLock) readPID() int {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}
