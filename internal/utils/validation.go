package utils

import (
	"errors"
	"regexp"
)

// Compiled regular expressions for validation
var (
	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)
)

// ValidateStationName validates that a station name is safe and within
// reasonable limits. Station names are free-form text (many are CJK), so
// this rejects only length abuse and injection-looking input.
func ValidateStationName(name string) error {
	if name == "" {
		return errors.New("station name cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("station name too long (max 100 characters)")
	}

	if dangerousPattern.MatchString(name) {
		return errors.New("station name contains invalid characters")
	}

	return nil
}
