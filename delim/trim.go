package delim

import "strings"

// TrimField removes leading and trailing white space from a field.
func TrimField(field string) string {
	return strings.TrimSpace(field)
}

// TrimmedLen is the length in bytes of a field after trimming.
func TrimmedLen(field string) int {
	return len(strings.TrimSpace(field))
}
