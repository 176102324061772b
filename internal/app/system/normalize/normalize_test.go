package normalize_test

import (
	"testing"

	"github.com/sece-innovation/hackhub/internal/app/system/normalize"
)

func TestEmail(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Student@SECE.ac.in", "student@sece.ac.in"},
		{"  padded@example.com  ", "padded@example.com"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalize.Email(c.in); got != c.want {
			t.Errorf("Email(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Ganesh   Prabu ", "Ganesh Prabu"},
		{"single", "single"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalize.Name(c.in); got != c.want {
			t.Errorf("Name(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
