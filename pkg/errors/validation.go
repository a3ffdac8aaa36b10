package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidateFinite checks that every value is a finite float.
// NaN and infinities are rejected because they would render as
// non-numeric TikZ coordinates and silently corrupt the output.
func ValidateFinite(label string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) {
			return New(ErrCodeInvalidGeometry, "%s must be finite, got NaN", label)
		}
		if math.IsInf(v, 0) {
			return New(ErrCodeInvalidGeometry, "%s must be finite, got %v", label, v)
		}
	}
	return nil
}

// ValidateNonNegative checks that a value is finite and not negative.
// Zero is allowed: degenerate radii render fine and are sometimes
// useful as placeholders.
func ValidateNonNegative(label string, v float64) error {
	if err := ValidateFinite(label, v); err != nil {
		return err
	}
	if v < 0 {
		return New(ErrCodeInvalidGeometry, "%s must not be negative, got %v", label, v)
	}
	return nil
}

// ValidateCount checks that a point sequence is long enough to form
// the geometry it describes.
func ValidateCount(label string, got, minimum int) error {
	if got < minimum {
		return New(ErrCodeInsufficientGeometry, "%s requires at least %d points, got %d", label, minimum, got)
	}
	return nil
}

// styleNameRegex matches valid TikZ style names. Spaces are allowed
// because TikZ itself allows them ("my style/.style={...}").
var styleNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9 _-]*$`)

// ValidateStyleName validates a style name for use in a \tikzset rule.
func ValidateStyleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidStyle, "style name cannot be empty")
	}
	if !styleNameRegex.MatchString(name) {
		return New(ErrCodeInvalidStyle, "invalid style name: %q", name)
	}
	return nil
}

// ValidateDocumentName validates a stored document name for safety.
// It ensures the name is a simple basename without path components.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - No hidden files (leading dot)
//   - Maximum length of 256 characters
func ValidateDocumentName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "document name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "document name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "document name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "document name cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "document name cannot contain path traversal sequences (..)")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidInput, "document name cannot be a hidden file")
	}

	return nil
}
