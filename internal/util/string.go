package util

import "strings"

// NormalizeURL trims whitespace and prepends https:// when no scheme is
// present, so "example.com" and "https://example.com" address the same site.
func NormalizeURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return url
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return url
}

// TruncateString truncates a string to maxRunes characters (rune-based, not
// byte-based). If truncated, appends "..." to the result.
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// SquashWhitespace collapses runs of whitespace into single spaces.
func SquashWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
