package utils

// TruncateRunes shortens s to at most max runes. Cutting on a rune boundary
// keeps a multi-byte character from being split into invalid UTF-8.
func TruncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
