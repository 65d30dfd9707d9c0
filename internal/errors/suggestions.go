package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrNoteNotFound:      "Use 'notepal note list' to see available notes.",
	ErrTaskNotFound:      "Use 'notepal task list' to see available tasks.",
	ErrReminderNotFound:  "Use 'notepal remind list' to see scheduled reminders.",
	ErrWebhookNotFound:   "Use 'notepal webhook list' to see configured webhooks.",
	ErrInvalidDateTime:   "Try formats like 'tomorrow 9am', 'friday 5pm', or '2026-01-15 14:00'.",
	ErrInvalidPriority:   "Priority must be one of: low, medium, high.",
	ErrInvalidRepeatRule: "Repeat must be one of: none, daily, weekly, monthly, custom.",
	ErrInvalidTheme:      "Use 'notepal settings themes' to see available themes.",
	ErrInvalidURL:        "Provide a valid URL starting with https:// (or http:// for localhost).",

	// System errors
	ErrDiskFull:           "Free up disk space and try again. Your in-memory data is preserved.",
	ErrDatabaseCorrupted:  "Export what you can with 'notepal export' and re-import into a fresh data directory.",
	ErrNetworkUnavailable: "Check your internet connection. Cached shell resources are still served offline.",
	ErrLockHeld:           "Another notepal instance is running. Stop it with 'notepal daemon stop' or check for stale processes.",
	ErrPermissionDenied:   "Check file permissions in your data directory (~/.local/share/notepal/).",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	if IsCorruptDataError(err) {
		return "Your saved data could not be read. It has not been deleted; try importing a previous export."
	}
	if IsValidationError(err) {
		return "The document must contain 'notes' and 'tasks' arrays. Nothing was imported."
	}
	if IsStorageError(err) {
		return "Saving failed. Your previous data is unchanged; free up space and try again."
	}

	return ""
}
