package user

import (
	"os"
	"os/user"
	"strings"
)

// GetCurrentUsername returns the current system username.
// It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER environment variable - fallback for restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
func GetCurrentUsername() string {
	currentUser, err := user.Current()
	if err != nil || currentUser.Username == "" {
		username := os.Getenv("USER")
		if username == "" {
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}

// ResolveAuthor returns the configured author, or the system username when
// none is configured.
func ResolveAuthor(configured string) string {
	if author := strings.TrimSpace(configured); author != "" {
		return author
	}
	return GetCurrentUsername()
}
