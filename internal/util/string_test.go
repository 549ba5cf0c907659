package util

import "testing"

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"example.com", "https://example.com"},
		{"  example.com  ", "https://example.com"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeURL(tc.input); got != tc.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("hello", 10); got != "hello" {
		t.Errorf("short string should pass through, got %q", got)
	}
	if got := TruncateString("hello world", 5); got != "hello..." {
		t.Errorf("expected truncation with ellipsis, got %q", got)
	}
	// Rune-based, so multibyte characters are not split.
	if got := TruncateString("안녕하세요 세계", 5); got != "안녕하세요..." {
		t.Errorf("expected rune-safe truncation, got %q", got)
	}
}

func TestSquashWhitespace(t *testing.T) {
	if got := SquashWhitespace("  a \n\t b   c  "); got != "a b c" {
		t.Errorf("SquashWhitespace = %q", got)
	}
}
