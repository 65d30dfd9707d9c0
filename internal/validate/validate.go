// Package validate provides input validation helpers for the NotePal CLI.
package validate

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/notepal/notepal/internal/errors"
	"github.com/notepal/notepal/internal/model"
)

const (
	// MaxTitleLength is the maximum length for note, task, and reminder titles.
	MaxTitleLength = 200
	// MaxContentLength is the maximum length for note content.
	MaxContentLength = 65536
	// MaxSearchTermLength is the maximum length for a search term.
	MaxSearchTermLength = 256
	// MaxURLLength is the maximum length for a URL.
	MaxURLLength = 2048
	// MaxCustomRepeatDays is the largest custom repeat interval.
	MaxCustomRepeatDays = 365
)

// Title validates a note, task, or reminder title.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewUserError("Title cannot be empty", "Provide a title")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewUserErrorWithField("title", title,
			"Title too long",
			fmt.Sprintf("Titles must be %d characters or fewer", MaxTitleLength))
	}
	return nil
}

// Content validates note content.
func Content(content string) error {
	if utf8.RuneCountInString(content) > MaxContentLength {
		return errors.NewUserError(
			"Content too long",
			fmt.Sprintf("Note content must be %d characters or fewer", MaxContentLength))
	}
	return nil
}

// SearchTerm validates a search term.
func SearchTerm(term string) error {
	if strings.TrimSpace(term) == "" {
		return errors.NewUserError("Search term cannot be empty", "Provide a term to search for")
	}
	if utf8.RuneCountInString(term) > MaxSearchTermLength {
		return errors.NewUserError("Search term too long",
			fmt.Sprintf("Search terms must be %d characters or fewer", MaxSearchTermLength))
	}
	return nil
}

// Priority validates a task priority.
func Priority(p string) error {
	if !model.IsValidPriority(p) {
		return errors.NewUserErrorWithField("priority", p,
			"Invalid priority",
			"Use one of: low, medium, high")
	}
	return nil
}

// RepeatRule validates a reminder repeat rule. Custom rules need a
// positive day count.
func RepeatRule(rule string, customDays int) error {
	if !model.IsValidRepeatRule(rule) {
		return errors.NewUserErrorWithField("repeat", rule,
			"Invalid repeat rule",
			"Use one of: none, daily, weekly, monthly, custom")
	}
	if rule == model.RepeatCustom {
		if customDays < 1 || customDays > MaxCustomRepeatDays {
			return errors.NewUserErrorWithField("repeat", rule,
				"Invalid custom repeat interval",
				fmt.Sprintf("Custom repeats need a day count between 1 and %d", MaxCustomRepeatDays))
		}
	}
	return nil
}

// Theme validates a theme name against the available themes.
func Theme(name string, s model.Settings) error {
	if !s.HasTheme(name) {
		return errors.NewUserErrorWithField("theme", name,
			"Unknown theme",
			"Available themes: "+strings.Join(s.AvailableThemes, ", "))
	}
	return nil
}

// shortcutRegex matches combos like "Ctrl+Alt+N".
var shortcutRegex = regexp.MustCompile(`^((Ctrl|Alt|Shift|Meta)\+)+[A-Za-z0-9]$`)

// Shortcut validates a keyboard shortcut combo.
func Shortcut(combo string) error {
	if !shortcutRegex.MatchString(combo) {
		return errors.NewUserErrorWithField("shortcut", combo,
			"Invalid shortcut",
			"Use modifier+key form like 'Ctrl+Alt+N'")
	}
	return nil
}

// URL validates a URL for use as a webhook or sync endpoint.
func URL(rawURL string) error {
	if rawURL == "" {
		return errors.NewUserError("URL cannot be empty", "Provide a valid URL")
	}
	if len(rawURL) > MaxURLLength {
		return errors.NewUserError("URL too long", "URLs must be 2048 characters or fewer")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL format",
			"Provide a valid URL starting with https://")
	}

	// Check scheme
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL scheme",
			"URLs must use https:// (or http:// for localhost)")
	}

	// Check hostname exists
	hostname := parsed.Hostname()
	if hostname == "" {
		return errors.NewUserErrorWithField("url", rawURL,
			"Invalid URL: missing hostname",
			"Provide a valid URL like https://example.com/webhook")
	}

	// Check for localhost (http allowed)
	isLocalhost := hostname == "localhost" || hostname == "127.0.0.1" || hostname == "::1"

	// Require HTTPS for non-localhost
	if parsed.Scheme == "http" && !isLocalhost {
		return errors.NewUserErrorWithField("url", rawURL,
			"HTTP not allowed for external URLs",
			"Use https:// for security. HTTP is only allowed for localhost.")
	}

	// Check for internal IPs (SSRF protection)
	if !isLocalhost {
		if err := checkInternalIP(hostname); err != nil {
			return err
		}
	}

	return nil
}

// checkInternalIP checks if a hostname resolves to an internal IP.
func checkInternalIP(hostname string) error {
	// First check if it's a direct IP
	if ip := net.ParseIP(hostname); ip != nil {
		if isInternalIP(ip) {
			return errors.NewUserErrorWithField("url", hostname,
				"Internal IP addresses not allowed",
				"Webhook URLs must point to external services")
		}
		return nil
	}

	// Try to resolve hostname
	ips, err := net.LookupIP(hostname)
	if err != nil {
		// DNS resolution failed - this is OK, the webhook will fail later
		return nil
	}

	for _, ip := range ips {
		if isInternalIP(ip) {
			return errors.NewUserErrorWithField("url", hostname,
				"Hostname resolves to internal IP",
				"Webhook URLs must point to external services")
		}
	}

	return nil
}

// isInternalIP checks if an IP is in a private/internal range.
func isInternalIP(ip net.IP) bool {
	privateRanges := []string{
		"10.0.0.0/8",     // RFC 1918
		"172.16.0.0/12",  // RFC 1918
		"192.168.0.0/16", // RFC 1918
		"127.0.0.0/8",    // Loopback (except explicit localhost check)
		"169.254.0.0/16", // Link-local
		"fc00::/7",       // IPv6 private
		"fe80::/10",      // IPv6 link-local
		"::1/128",        // IPv6 loopback
	}

	for _, cidr := range privateRanges {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			continue
		}
		if network.Contains(ip) {
			return true
		}
	}

	return false
}

// NonEmpty validates that a string is not empty.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserError(
			field+" cannot be empty",
			"Provide a value for "+field)
	}
	return nil
}

// InRange validates that an integer is within a range.
func InRange(field string, value, min, max int) error {
	if value < min || value > max {
		return errors.NewUserErrorWithField(field, fmt.Sprintf("%d", value),
			"Value out of range",
			fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return nil
}
