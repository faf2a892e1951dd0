// Package text provides small helpers for rune-aware text handling.
// Feed content is frequently multi-byte (curly quotes, accented names,
// non-Latin headlines), so byte-based length checks miscount.
package text

// CountRunes counts Unicode characters in the given text, not bytes.
func CountRunes(s string) int {
	return len([]rune(s))
}

// Truncate shortens s to at most max runes. Strings already within the
// limit are returned unchanged.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
