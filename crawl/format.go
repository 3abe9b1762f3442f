package crawl

import (
	"fmt"
	"net/url"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash returns the xxhash of content as 16 hex digits.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// DisplayPath returns the path of rawURL for progress output, cut from the
// left to at most maxLen runes so the product slug stays visible.
// Unparseable URLs are shown as given.
func DisplayPath(rawURL string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	s := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		s = u.EscapedPath()
		if s == "" {
			s = "/"
		}
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return string(runes[len(runes)-maxLen:])
	}
	return "..." + string(runes[len(runes)-maxLen+3:])
}

// FormatChars formats a character count in short human-readable form.
func FormatChars(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM chars", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk chars", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d chars", n)
	}
}
