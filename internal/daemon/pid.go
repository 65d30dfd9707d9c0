// Package daemon provides background process management for NotePal.
package daemon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for runtime directories.
	AppName = "notepal"
	// PIDFileName is the PID file name.
	PIDFileName = "notepal.pid"
)

var (
	// ErrNotRunning is returned when no daemon process holds the PID file.
	ErrNotRunning = errors.New("daemon is not running")
	// ErrAlreadyRunning is returned when a start finds a live daemon.
	ErrAlreadyRunning = errors.New("daemon is already running")
)

// PIDFile records which process is the daemon. 'notepal daemon start'
// writes it, every other command reads it to decide whether reminders
// will actually fire. A PID left behind by a crash reads as not
// running, so stale files never block a restart.
type PIDFile struct {
	path string
}

// NewPIDFile returns the manager for the standard PID file location.
func NewPIDFile() *PIDFile {
	return &PIDFile{
		path: GetPIDFilePath(),
	}
}

// GetPIDFilePath returns the PID file path under the XDG state home;
// the runtime dir is not guaranteed to exist on every platform.
func GetPIDFilePath() string {
	return filepath.Join(xdg.StateHome, AppName, PIDFileName)
}

// Write records the current process as the daemon.
func (p *PIDFile) Write() error {
	return p.WritePID(os.Getpid())
}

// WritePID records the given PID, creating the state directory if needed.
func (p *PIDFile) WritePID(pid int) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("failed to create PID directory: %w", err)
	}
	if err := os.WriteFile(p.path, []byte(strconv.Itoa(pid)), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	return nil
}

// Read returns the recorded PID. A missing file means ErrNotRunning.
func (p *PIDFile) Read() (int, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNotRunning
		}
		return 0, fmt.Errorf("failed to read PID file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %w", err)
	}
	return pid, nil
}

// Remove deletes the PID file; a missing file is not an error.
func (p *PIDFile) Remove() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

// Exists reports whether the PID file is present, live or stale.
func (p *PIDFile) Exists() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// IsRunning reports whether the recorded process is still alive.
func (p *PIDFile) IsRunning() bool {
	pid, err := p.Read()
	if err != nil {
		return false
	}
	return IsProcessRunning(pid)
}

// GetRunningPID returns the live daemon's PID, or 0 when there is none.
func (p *PIDFile) GetRunningPID() int {
	pid, err := p.Read()
	if err != nil {
		return 0
	}
	if !IsProcessRunning(pid) {
		return 0
	}
	return pid
}

// Path returns the PID file path.
func (p *PIDFile) Path() string {
	return p.path
}

// IsProcessRunning probes a PID with signal 0, which checks existence
// without delivering anything.
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
