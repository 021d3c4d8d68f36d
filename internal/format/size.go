package format

import (
	"fmt"
	"strings"
)

const (
	kb = 1024
	mb = 1024 * kb
)

// FormatSize renders a byte count as whole bytes, or kilobytes/megabytes
// with one decimal.
func FormatSize(bytes int64) string {
	switch {
	case bytes < kb:
		return fmt.Sprintf("%d B", bytes)
	case bytes < mb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	}
}

// Plural returns "1 file", "3 files".
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// Initials builds the avatar label for a customer name: the first letters
// of the first and last space-separated tokens, or the first two characters
// of a single-token name, upper-cased. An empty name yields "?".
func Initials(name string) string {
	if name == "" {
		return "?"
	}

	parts := strings.Split(strings.TrimSpace(name), " ")
	if len(parts) == 1 {
		return strings.ToUpper(firstRunes(parts[0], 2))
	}
	return strings.ToUpper(firstRunes(parts[0], 1) + firstRunes(parts[len(parts)-1], 1))
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
