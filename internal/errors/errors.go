// Package errors provides consistent error types for the NotePal CLI.
// It defines two broad categories, UserError (fixable by the user) and
// SystemError (environment issues), plus the persistence error types
// CorruptDataError, StorageError and ValidationError.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrNoteNotFound       = errors.New("note not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrReminderNotFound   = errors.New("reminder not found")
	ErrWebhookNotFound    = errors.New("webhook not found")
	ErrInvalidDateTime    = errors.New("invalid date or time")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidRepeatRule  = errors.New("invalid repeat rule")
	ErrInvalidTheme       = errors.New("unknown theme")
	ErrInvalidURL         = errors.New("invalid URL")
	ErrDiskFull           = errors.New("disk full")
	ErrDatabaseCorrupted  = errors.New("database corrupted")
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrLockHeld           = errors.New("database locked by another process")
	ErrPermissionDenied   = errors.New("permission denied")
)

// UserError represents an error that the user can fix.
// Examples: invalid input, missing required arguments, incorrect format.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// SystemError represents a system-level error that the user cannot directly fix.
// Examples: disk full, network failure, database corruption.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// CorruptDataError indicates the persisted document could not be parsed.
// It is surfaced to the user; the data is never silently discarded.
type CorruptDataError struct {
	Key   string // The storage key of the document
	Cause error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("persisted data at %q is corrupt", e.Key)
}

func (e *CorruptDataError) Unwrap() error {
	return e.Cause
}

// NewCorruptDataError creates a new CorruptDataError.
func NewCorruptDataError(key string, cause error) *CorruptDataError {
	return &CorruptDataError{Key: key, Cause: cause}
}

// StorageError indicates a write to the persisted slot failed, e.g. on
// quota exhaustion. The previous in-memory state is retained.
type StorageError struct {
	Op    string
	Cause error
}

func (e *StorageError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("storage write failed during %s", e.Op)
	}
	return "storage write failed"
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new StorageError.
func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{Op: op, Cause: cause}
}

// ValidationError indicates an imported document is missing required
// collections or has them wrong-typed. The import is aborted as a whole.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid document: %s %s", e.Field, e.Reason)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// IsCorruptDataError checks if an error is a CorruptDataError.
func IsCorruptDataError(err error) bool {
	var ce *CorruptDataError
	return errors.As(err, &ce)
}

// IsStorageError checks if an error is a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// AsSystemError extracts a SystemError from an error chain.
func AsSystemError(err error) (*SystemError, bool) {
	var se *SystemError
	ok := errors.As(err, &se)
	return se, ok
}
