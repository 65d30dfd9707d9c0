package logging

import (
	"strings"
)

const (
	// MaskChar is the character used for masking.
	MaskChar = "*"
	// URLMaskLength is how many characters to show before masking URLs.
	URLMaskLength = 30
	// DefaultMaskLength is how many mask characters to show.
	DefaultMaskLength = 3
)

// MaskURL masks a URL, showing only the first URLMaskLength characters.
// Webhook and OCR endpoint URLs may embed tokens in their paths.
func MaskURL(url string) string {
	if len(url) <= URLMaskLength {
		return url
	}
	return url[:URLMaskLength] + strings.Repeat(MaskChar, DefaultMaskLength)
}

// MaskPartial masks a value but shows the first few characters.
func MaskPartial(value string, showChars int) string {
	if len(value) <= showChars {
		return strings.Repeat(MaskChar, len(value))
	}
	return value[:showChars] + strings.Repeat(MaskChar, DefaultMaskLength)
}
