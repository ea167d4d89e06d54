package fields

import (
	"regexp"
	"strings"
)

var reRunSpaces = regexp.MustCompile(`[ \t]+`)

// Normalize collapses runs of spaces and tabs into a single space and
// trims the whole document. Newlines are preserved: several extractors
// rely on them as field-region delimiters. Total and idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = reRunSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
