// Package htmlsanitize strips dangerous markup from user-supplied rich
// text before it is stored. Hackathon descriptions are the only field
// that accepts HTML.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// Sanitize removes scripts, event handlers, and unsafe URLs, keeping
// common formatting tags.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
