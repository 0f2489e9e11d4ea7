package utils

import "strings"

// TruncateRunes trims text and cuts it to at most max runes
func TruncateRunes(text string, max int) string {
	text = strings.TrimSpace(text)
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return strings.TrimSpace(string(r[:max]))
}
