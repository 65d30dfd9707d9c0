package storage

import (
	"fmt"

	"github.com/notepal/notepal/internal/errors"
)

const (
	// MinFreeSpace is the minimum free space required for write operations (10MB).
	MinFreeSpace = 10 * 1024 * 1024
	// MinFreeSpaceWarning is the threshold for warning about low disk space (50MB).
	MinFreeSpaceWarning = 50 * 1024 * 1024
)

// DiskSpaceInfo contains information about available disk space.
type DiskSpaceInfo struct {
	Path       string
	TotalBytes uint64
	FreeBytes  uint64
	UsedBytes  uint64
}

// FreePercent returns the percentage of free space.
func (d *DiskSpaceInfo) FreePercent() float64 {
	if d.TotalBytes == 0 {
		return 0
	}
	return float64(d.FreeBytes) / float64(d.TotalBytes) * 100
}

// CheckDiskSpace checks if there's enough disk space at the given path.
// Returns an error if free space is below MinFreeSpace.
func CheckDiskSpace(path string) error {
	info, err := GetDiskSpace(path)
	if err != nil {
		// If we can't check disk space, proceed; the write itself will fail
		// with a clearer error if space actually runs out.
		return nil
	}

	if info.FreeBytes < MinFreeSpace {
		return errors.NewSystemError(
			fmt.Sprintf("insufficient disk space: %d MB free, need at least %d MB",
				info.FreeBytes/(1024*1024),
				MinFreeSpace/(1024*1024)),
			errors.ErrDiskFull,
		)
	}

	return nil
}

// CheckDiskSpaceWarning checks disk space and returns a warning message if low.
// Returns empty string if disk space is adequate.
func CheckDiskSpaceWarning(path string) string {
	info, err := GetDiskSpace(path)
	if err != nil {
		return ""
	}

	if info.FreeBytes < MinFreeSpaceWarning {
		return fmt.Sprintf("Warning: Low disk space (%d MB free)", info.FreeBytes/(1024*1024))
	}

	return ""
}
