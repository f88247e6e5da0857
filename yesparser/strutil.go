package yesparser

import "strings"

// IsQuoted reports whether s is wrapped in a pair of double quotes.
func IsQuoted(s string) bool {
	return len(s) >= 2 && s[0] == GlyphQuote && s[len(s)-1] == GlyphQuote
}

// Quote wraps s in double quotes unless it already is quoted.
func Quote(s string) string {
	if IsQuoted(s) {
		return s
	}
	return string(GlyphQuote) + s + string(GlyphQuote)
}

// Unquote strips exactly one pair of surrounding double quotes, if present.
func Unquote(s string) string {
	if IsQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}

// Trim removes leading and trailing space bytes. Only 0x20 is whitespace
// to the grammar; tabs and other control bytes are left alone.
func Trim(s string) string {
	return strings.Trim(s, " ")
}

// Substring slices s by character index, taking up to length characters
// starting at start. Out-of-range indices clamp rather than panic.
func Substring(s string, start, length int) string {
	if start < 0 || length <= 0 {
		return ""
	}
	runes := []rune(s)
	if start >= len(runes) {
		return ""
	}
	end := start + length
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}
