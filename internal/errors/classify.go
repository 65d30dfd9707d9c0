package errors

import (
	"errors"
	"syscall"
)

// Category represents the type of error for display and handling purposes.
type Category int

const (
	// CategoryUnknown is the default for unclassified errors.
	CategoryUnknown Category = iota
	// CategoryUser indicates an error the user can fix (bad input, missing args).
	CategoryUser
	// CategorySystem indicates a system-level error (disk full, corrupt data).
	CategorySystem
	// CategoryData indicates the persisted or imported document is bad.
	CategoryData
	// CategoryInternal indicates an internal bug or unexpected state.
	CategoryInternal
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	case CategoryData:
		return "data"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Classify determines the category of an error.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	if IsUserError(err) {
		return CategoryUser
	}
	if IsCorruptDataError(err) || IsValidationError(err) {
		return CategoryData
	}
	if IsStorageError(err) || IsSystemError(err) {
		return CategorySystem
	}
	if isSystemLevel(err) {
		return CategorySystem
	}

	return CategoryUnknown
}

// isSystemLevel checks for well-known OS-level error conditions.
func isSystemLevel(err error) bool {
	switch {
	case errors.Is(err, ErrDiskFull),
		errors.Is(err, ErrDatabaseCorrupted),
		errors.Is(err, ErrNetworkUnavailable),
		errors.Is(err, ErrLockHeld),
		errors.Is(err, ErrPermissionDenied):
		return true
	case errors.Is(err, syscall.ENOSPC),
		errors.Is(err, syscall.EACCES),
		errors.Is(err, syscall.EROFS):
		return true
	}
	return false
}
