// Package parser provides natural language date and time parsing for NotePal.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// WhenResult holds a parsed point in time and any error.
type WhenResult struct {
	Time  time.Time
	Error error
}

// relativeRegex matches relative time expressions like "+5m", "+1h", "+2d".
var relativeRegex = regexp.MustCompile(`^\+(\d+)([smhdw])$`)

// ParseWhen parses a natural language datetime expression used for
// reminders. Supports formats like:
//   - "+5m", "+1h", "+2d" (relative)
//   - "friday 5pm", "tomorrow 2pm" (natural language)
//   - "2026-01-15 14:00" (ISO format)
func ParseWhen(input string) WhenResult {
	input = strings.TrimSpace(input)
	if input == "" {
		return WhenResult{Error: fmt.Errorf("a date or time is required")}
	}

	// Check for relative time format (+5m, +1h, etc.)
	if match := relativeRegex.FindStringSubmatch(input); match != nil {
		return parseRelativeWhen(match[1], match[2])
	}

	// Use go-dateparser for natural language parsing
	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return WhenResult{Error: fmt.Errorf("could not parse %q", input)}
	}

	return WhenResult{Time: result.Time}
}

// parseRelativeWhen parses relative time expressions.
func parseRelativeWhen(numStr, unit string) WhenResult {
	num, _ := strconv.Atoi(numStr)
	if num <= 0 {
		return WhenResult{Error: fmt.Errorf("invalid duration: must be positive")}
	}

	var d time.Duration
	switch unit {
	case "s":
		d = time.Duration(num) * time.Second
	case "m":
		d = time.Duration(num) * time.Minute
	case "h":
		d = time.Duration(num) * time.Hour
	case "d":
		d = time.Duration(num) * 24 * time.Hour
	case "w":
		d = time.Duration(num) * 7 * 24 * time.Hour
	default:
		return WhenResult{Error: fmt.Errorf("invalid time unit: %s", unit)}
	}

	return WhenResult{Time: time.Now().Add(d)}
}

// ParseDueDate parses a date-only expression for task due dates and
// returns it in the document's date-only layout.
func ParseDueDate(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("a due date is required")
	}

	// Accept the document layout directly
	if t, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return t.Format("2006-01-02"), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return "", fmt.Errorf("could not parse due date %q", input)
	}

	return result.Time.Format("2006-01-02"), nil
}
