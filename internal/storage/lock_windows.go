//go:build windows

package storage

import (
	"os"
)

// flockAcquire acquires an exclusive lock on the file (Windows implementation).
// The lock is implicit through file handle exclusivity.
func flockAcquire(file *os.File) error {
	return nil
}

// flockRelease releases the lock on the file (Windows implementation).
func flockRelease(file *os.File) error {
	// On Windows, closing the file releases the lock
	return nil
}

// isProcessRunning checks if a process with the given PID is still running.
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	ws, err := process.Wait()
	if err != nil {
		// Cannot wait on a process we did not spawn - assume running.
		return true
	}
	return !ws.Exited()
}
