// Package normalize holds input normalization applied before any store
// write, so lookups and unique indexes see one canonical form.
package normalize

import (
	"strings"
)

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name and collapses internal whitespace runs.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
