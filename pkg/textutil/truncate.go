// Package textutil provides small string helpers used by the report views.
package textutil

import "strings"

// Default truncation settings.
const (
	DefaultLength    = 30
	DefaultOmission  = "…"
	DefaultSeparator = ","
)

// TruncateOptions configures Truncate. Zero values fall back to the defaults,
// except Separator which may be disabled with NoSeparator.
type TruncateOptions struct {
	Length      int
	Omission    string
	Separator   string
	NoSeparator bool
}

// Truncate shortens s to at most opts.Length runes. When s is cut, the cut
// backs off to the last separator so no token is split, and the omission
// marker is appended.
func Truncate(s string, opts TruncateOptions) string {
	length := opts.Length
	if length <= 0 {
		length = DefaultLength
	}

	omission := opts.Omission
	if omission == "" {
		omission = DefaultOmission
	}

	separator := opts.Separator
	if separator == "" && !opts.NoSeparator {
		separator = DefaultSeparator
	}

	runes := []rune(s)
	if len(runes) <= length {
		return s
	}

	truncated := string(runes[:length])

	if separator != "" {
		if idx := strings.LastIndex(truncated, separator); idx != -1 {
			truncated = truncated[:idx]
		}
	}

	return truncated + omission
}

// Pluralize returns word when count is 1 and plural otherwise. An empty
// plural defaults to word + "s".
func Pluralize(word string, count int, plural string) string {
	if count == 1 {
		return word
	}

	if plural == "" {
		return word + "s"
	}

	return plural
}
