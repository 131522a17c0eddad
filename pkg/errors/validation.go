package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateSpan checks that v is a usable rectangle dimension: finite and
// strictly positive. name identifies the span in the error message.
func ValidateSpan(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidSpan, "%s must be finite, got %v", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidSpan, "%s must be > 0, got %g", name, v)
	}
	return nil
}

// ValidateDistance checks that v is finite and not negative. Margins and
// standoffs may be zero.
func ValidateDistance(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidSpan, "%s must be finite, got %v", name, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidSpan, "%s must be >= 0, got %g", name, v)
	}
	return nil
}

// ValidateOffset checks that v is finite. Offsets may be negative.
func ValidateOffset(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidSpan, "%s must be finite, got %v", name, v)
	}
	return nil
}

// ValidateTreadCount checks that a staircase has at least one tread.
func ValidateTreadCount(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidTreadCount, "tread count must be >= 1, got %d", n)
	}
	return nil
}

// ValidateLabel validates user-supplied label text for safety.
// Labels end up inside SVG text nodes and HTTP responses, so control
// characters other than tab are rejected and the length is bounded.
func ValidateLabel(field, s string) error {
	const maxLabelLength = 128
	if len(s) > maxLabelLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters)", field, maxLabelLength)
	}
	for _, r := range s {
		if r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", field)
		}
	}
	return nil
}

// ValidateID validates a room identifier. IDs are used as SVG element ids
// and graph node names, so only ASCII letters, digits, '-' and '_' are
// allowed.
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "room id cannot be empty")
	}
	if err := ValidateLabel("room id", id); err != nil {
		return err
	}
	if i := strings.IndexFunc(id, func(r rune) bool { return !isIDRune(r) }); i >= 0 {
		return New(ErrCodeInvalidInput, "room id %q contains invalid character %q", id, id[i:i+1])
	}
	return nil
}

func isIDRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_'
}
