package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notepal/notepal/internal/model"
)

// =============================================================================
// Field Validator Tests
// =============================================================================

func TestTitle(t *testing.T) {
	assert.NoError(t, Title("Groceries"))
	assert.Error(t, Title(""))
	assert.Error(t, Title("   "))
	assert.Error(t, Title(strings.Repeat("x", MaxTitleLength+1)))
	assert.NoError(t, Title(strings.Repeat("x", MaxTitleLength)))
}

func TestContent(t *testing.T) {
	assert.NoError(t, Content(""))
	assert.NoError(t, Content("some body"))
	assert.Error(t, Content(strings.Repeat("x", MaxContentLength+1)))
}

func TestSearchTerm(t *testing.T) {
	assert.NoError(t, SearchTerm("budget"))
	assert.Error(t, SearchTerm(""))
	assert.Error(t, SearchTerm("  "))
	assert.Error(t, SearchTerm(strings.Repeat("x", MaxSearchTermLength+1)))
}

func TestPriority(t *testing.T) {
	assert.NoError(t, Priority("low"))
	assert.NoError(t, Priority("medium"))
	assert.NoError(t, Priority("high"))
	assert.Error(t, Priority("urgent"))
	assert.Error(t, Priority(""))
}

func TestRepeatRule(t *testing.T) {
	assert.NoError(t, RepeatRule("none", 0))
	assert.NoError(t, RepeatRule("daily", 0))
	assert.NoError(t, RepeatRule("custom", 10))
	assert.Error(t, RepeatRule("hourly", 0))

	// Custom rules need a day count between 1 and the cap.
	assert.Error(t, RepeatRule("custom", 0))
	assert.Error(t, RepeatRule("custom", MaxCustomRepeatDays+1))
	assert.NoError(t, RepeatRule("custom", MaxCustomRepeatDays))
}

func TestTheme(t *testing.T) {
	s := model.DefaultSettings()
	assert.NoError(t, Theme("dark", s))
	assert.Error(t, Theme("neon", s))
}

func TestShortcut(t *testing.T) {
	assert.NoError(t, Shortcut("Ctrl+Alt+N"))
	assert.NoError(t, Shortcut("Meta+K"))
	assert.NoError(t, Shortcut("Ctrl+Shift+2"))
	assert.Error(t, Shortcut("N"))
	assert.Error(t, Shortcut("Ctrl+"))
	assert.Error(t, Shortcut("ctrl+n"))
	assert.Error(t, Shortcut(""))
}

func TestNonEmpty(t *testing.T) {
	assert.NoError(t, NonEmpty("font", "mono"))
	assert.Error(t, NonEmpty("font", ""))
	assert.Error(t, NonEmpty("font", "  "))
}

func TestInRange(t *testing.T) {
	assert.NoError(t, InRange("interval", 30, 5, 3600))
	assert.NoError(t, InRange("interval", 5, 5, 3600))
	assert.Error(t, InRange("interval", 4, 5, 3600))
	assert.Error(t, InRange("interval", 3601, 5, 3600))
}

// =============================================================================
// URL Tests
// =============================================================================

func TestURL(t *testing.T) {
	assert.NoError(t, URL("https://ntfy.example.com/notepal"))
	assert.NoError(t, URL("http://localhost:8080/hook"))
	assert.NoError(t, URL("http://127.0.0.1/hook"))

	assert.Error(t, URL(""))
	assert.Error(t, URL("ftp://example.com"))
	assert.Error(t, URL("https://"))
	// Plain HTTP only for localhost.
	assert.Error(t, URL("http://example.com/hook"))
	// Internal addresses are rejected.
	assert.Error(t, URL("https://192.168.1.10/hook"))
	assert.Error(t, URL("https://10.0.0.5/hook"))
	assert.Error(t, URL("https://"+strings.Repeat("a", MaxURLLength)+".com"))
}

// =============================================================================
// Sanitizer Tests
// =============================================================================

func TestSanitizeTitle(t *testing.T) {
	assert.Equal(t, "hello", SanitizeTitle("  hello  "))
	assert.Equal(t, "ab", SanitizeTitle("a\x00\x01b"))
}

func TestSanitizeContent(t *testing.T) {
	assert.Equal(t, "line1\nline2", SanitizeContent("line1\r\nline2"))
	assert.Equal(t, "ab", SanitizeContent("a\x00b"))
	// Tabs and newlines survive.
	assert.Equal(t, "a\tb\nc", SanitizeContent("a\tb\nc"))
}

func TestSanitizeCategory(t *testing.T) {
	assert.Equal(t, "work", SanitizeCategory("Work"))
	assert.Equal(t, "side-project", SanitizeCategory("Side-Project!"))
	assert.Equal(t, "none", SanitizeCategory(""))
	assert.Equal(t, "none", SanitizeCategory("!!!"))
}
