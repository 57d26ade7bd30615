package user

import (
	"testing"
)

func TestGetCurrentUsername(t *testing.T) {
	// The actual value depends on the environment; it is never empty
	if username := GetCurrentUsername(); username == "" {
		t.Error("GetCurrentUsername() should never return an empty string")
	}
}

func TestResolveAuthor(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		want       string
	}{
		{name: "configured author wins", configured: "Asha", want: "Asha"},
		{name: "configured author is trimmed", configured: "  Bob ", want: "Bob"},
		{name: "blank falls back to username", configured: "   ", want: GetCurrentUsername()},
		{name: "empty falls back to username", configured: "", want: GetCurrentUsername()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveAuthor(tt.configured); got != tt.want {
				t.Errorf("ResolveAuthor(%q) = %q, want %q", tt.configured, got, tt.want)
			}
		})
	}
}
