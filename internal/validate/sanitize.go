package validate

import (
	"strings"
	"unicode"
)

// SanitizeTitle cleans a title for safe storage.
func SanitizeTitle(title string) string {
	// Trim whitespace
	title = strings.TrimSpace(title)

	// Remove control characters
	var sb strings.Builder
	for _, r := range title {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// SanitizeContent cleans note content for safe storage.
func SanitizeContent(content string) string {
	// Trim whitespace
	content = strings.TrimSpace(content)

	// Remove null bytes (common injection attempt)
	content = strings.ReplaceAll(content, "\x00", "")

	// Normalize line endings
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	return content
}

// SanitizeCategory cleans a task category for safe use.
func SanitizeCategory(category string) string {
	// Trim whitespace
	category = strings.TrimSpace(category)

	// Convert to lowercase
	category = strings.ToLower(category)

	// Keep only alphanumeric and dashes
	var sb strings.Builder
	for _, r := range category {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			sb.WriteRune(r)
		}
	}

	if sb.Len() == 0 {
		return "none"
	}
	return sb.String()
}

// StripControlChars removes all control characters from a string.
func StripControlChars(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if !unicode.IsControl(r) || r == '\n' || r == '\t' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
