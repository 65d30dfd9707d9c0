package ocr

// InsertText splices recognized text into note content at the given
// rune offset. An offset past the end appends; a negative offset
// prepends. Existing content is never clobbered.
func InsertText(content, text string, at int) string {
	if text == "" {
		return content
	}

	runes := []rune(content)
	if at < 0 {
		at = 0
	}
	if at > len(runes) {
		at = len(runes)
	}

	out := make([]rune, 0, len(runes)+len(text))
	out = append(out, runes[:at]...)
	out = append(out, []rune(text)...)
	out = append(out, runes[at:]...)
	return string(out)
}
