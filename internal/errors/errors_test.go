package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	err := NewUserError("Title cannot be empty", "Provide a title")
	assert.Equal(t, "Title cannot be empty", err.Error())
	assert.True(t, IsUserError(err))
	assert.False(t, IsSystemError(err))

	withField := NewUserErrorWithField("priority", "urgent", "Invalid priority", "Use low, medium, or high")
	assert.Equal(t, "Invalid priority: 'urgent'", withField.Error())
}

func TestSystemError(t *testing.T) {
	cause := fmt.Errorf("disk io failed")
	err := NewSystemErrorWithOp("save", "failed to write data", cause)

	assert.Equal(t, "failed to write data during save", err.Error())
	assert.True(t, IsSystemError(err))
	assert.Equal(t, cause, err.Unwrap())
}

func TestCorruptDataError(t *testing.T) {
	err := NewCorruptDataError("notepal:data", fmt.Errorf("unexpected end of JSON"))
	assert.Contains(t, err.Error(), "notepal:data")
	assert.True(t, IsCorruptDataError(err))
	assert.NotEmpty(t, GetSuggestion(err))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("notes", "is missing")
	assert.Equal(t, "invalid document: notes is missing", err.Error())
	assert.True(t, IsValidationError(err))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, CategoryUser, Classify(NewUserError("x", "y")))
	assert.Equal(t, CategorySystem, Classify(NewSystemError("x", nil)))
	assert.Equal(t, CategoryData, Classify(NewCorruptDataError("k", nil)))
	assert.Equal(t, CategoryData, Classify(NewValidationError("notes", "is missing")))
	assert.Equal(t, CategorySystem, Classify(NewStorageError("save", nil)))
	assert.Equal(t, CategorySystem, Classify(ErrDiskFull))
	assert.Equal(t, CategoryUnknown, Classify(nil))
	assert.Equal(t, CategoryUnknown, Classify(fmt.Errorf("anything")))
}

func TestClassifyWrapped(t *testing.T) {
	wrapped := Wrap(ErrLockHeld, "open database")
	assert.Equal(t, CategorySystem, Classify(wrapped))
	assert.True(t, Is(wrapped, ErrLockHeld))
}

func TestGetSuggestion(t *testing.T) {
	assert.Contains(t, GetSuggestion(ErrNoteNotFound), "note list")
	assert.Contains(t, GetSuggestion(ErrInvalidDateTime), "tomorrow")

	// Wrapped sentinels still match.
	assert.NotEmpty(t, GetSuggestion(fmt.Errorf("lookup: %w", ErrTaskNotFound)))

	// UserError suggestions come through.
	assert.Equal(t, "Provide a title", GetSuggestion(NewUserError("bad", "Provide a title")))

	assert.Empty(t, GetSuggestion(nil))
	assert.Empty(t, GetSuggestion(fmt.Errorf("mystery")))
}

func TestRootCause(t *testing.T) {
	root := fmt.Errorf("root")
	wrapped := Wrap(Wrap(root, "inner"), "outer")
	assert.Equal(t, root, RootCause(wrapped))
}
