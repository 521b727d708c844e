package errors

import (
	"strings"
	"unicode"
)

// MaxProgress is the upper bound of a progress percentage.
const MaxProgress = 100

// ValidateProgress rejects progress values outside [0, 100].
func ValidateProgress(p int) error {
	if p < 0 || p > MaxProgress {
		return New(ErrCodeInvalidRange, "progress %d outside [0, %d]", p, MaxProgress)
	}
	return nil
}

// ClampProgress forces p into [0, 100]. Imports clamp instead of failing.
func ClampProgress(p int) int {
	return max(0, min(p, MaxProgress))
}

// ValidateID validates a node or tree identifier.
//
// The rules are conservative because ids end up in share URLs and DOT output:
//   - No empty ids
//   - Maximum length of 128 characters
//   - No whitespace or control characters
//   - No slashes, quotes or backslashes
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "id %q contains whitespace or control characters", id)
		}
	}

	if strings.ContainsAny(id, `/\"'`) {
		return New(ErrCodeInvalidInput, "id %q contains invalid characters", id)
	}

	return nil
}

// ValidateName validates a display label.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "name too long (max 256 characters)")
	}
	return nil
}

// ValidateURL validates a resource URL string.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
