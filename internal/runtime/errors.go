package runtime

import (
	"github.com/notepal/notepal/internal/errors"
)

// FormatError formats an error with an optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := errors.GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
