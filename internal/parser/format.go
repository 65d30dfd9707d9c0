package parser

import (
	"fmt"
	"strings"
	"time"
)

// ParseWhenArgs joins multiple args into a single string for natural
// language parsing.
func ParseWhenArgs(args []string) WhenResult {
	if len(args) == 0 {
		return WhenResult{Error: fmt.Errorf("a date or time is required")}
	}
	return ParseWhen(strings.Join(args, " "))
}

// FormatDateTime formats a reminder datetime for display.
func FormatDateTime(t time.Time) string {
	now := time.Now()
	diff := time.Until(t)

	var datePart string
	if isSameDay(t, now) {
		datePart = "Today"
	} else if isSameDay(t, now.AddDate(0, 0, 1)) {
		datePart = "Tomorrow"
	} else if diff > 0 && diff < 7*24*time.Hour {
		datePart = t.Format("Monday")
	} else {
		datePart = t.Format("Mon, Jan 2")
	}

	timePart := t.Format("3:04 PM")

	return fmt.Sprintf("%s at %s", datePart, timePart)
}

// FormatTimeUntil formats the duration until a point in time.
func FormatTimeUntil(t time.Time) string {
	diff := time.Until(t)
	if diff < 0 {
		return "overdue"
	}

	if diff < time.Minute {
		return "less than a minute"
	}
	if diff < time.Hour {
		mins := int(diff.Minutes())
		if mins == 1 {
			return "in 1 minute"
		}
		return fmt.Sprintf("in %d minutes", mins)
	}
	if diff < 24*time.Hour {
		hours := int(diff.Hours())
		mins := int(diff.Minutes()) % 60
		if hours == 1 {
			if mins > 0 {
				return fmt.Sprintf("in 1 hour %d minutes", mins)
			}
			return "in 1 hour"
		}
		if mins > 0 {
			return fmt.Sprintf("in %d hours %d minutes", hours, mins)
		}
		return fmt.Sprintf("in %d hours", hours)
	}
	if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "in 1 day"
		}
		return fmt.Sprintf("in %d days", days)
	}

	weeks := int(diff.Hours() / (24 * 7))
	if weeks == 1 {
		return "in 1 week"
	}
	return fmt.Sprintf("in %d weeks", weeks)
}

// isSameDay checks if two times are on the same day.
func isSameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
