package usecase

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name     string
		username string
		want     bool
	}{
		{"plain", "alice", true},
		{"mixed case digits", "Alice42", true},
		{"dots underscores hyphens", "a.b_c-d", true},
		{"empty", "", false},
		{"space", "al ice", false},
		{"punctuation", "alice!", false},
		{"unicode", "алиса", false},
		{"at limit", strings.Repeat("a", maxUsernameLength), true},
		{"over limit", strings.Repeat("a", maxUsernameLength+1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateUsername(tc.username); got != tc.want {
				t.Fatalf("ValidateUsername(%q) = %v, want %v", tc.username, got, tc.want)
			}
		})
	}
}
