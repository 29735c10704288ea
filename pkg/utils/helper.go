package utils

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseID converts a path segment to a positive row id.
func ParseID(value string) (int64, bool) {
	if value == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}

	return id, true
}

// SearchableText reports whether s can be sent to PostgreSQL as text.
// The server rejects NUL bytes and invalid UTF-8.
func SearchableText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}
