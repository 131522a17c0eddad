package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidSpan, "hall width must be > 0, got %g", -2.0)

	if err.Code != ErrCodeInvalidSpan {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidSpan)
	}

	if err.Message != "hall width must be > 0, got -2" {
		t.Errorf("Message = %v, want %v", err.Message, "hall width must be > 0, got -2")
	}

	expected := "INVALID_SPAN: hall width must be > 0, got -2"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrCodeInternal, cause, "rsvg-convert failed")

	if err.Code != ErrCodeInternal {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInternal)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	if err.Error() != "INTERNAL_ERROR: rsvg-convert failed: exit status 1" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInconsistentPartition, "test"),
			code:     ErrCodeInconsistentPartition,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInconsistentPartition, "test"),
			code:     ErrCodeStairOutOfBounds,
			expected: false,
		},
		{
			name:     "wrapped by fmt",
			err:      fmt.Errorf("layout: %w", New(ErrCodeStairOutOfBounds, "inner")),
			code:     ErrCodeStairOutOfBounds,
			expected: true,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeInternal, New(ErrCodeInvalidSpan, "inner"), "outer"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidTreadCount, "test"),
			expected: ErrCodeInvalidTreadCount,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsConfiguration(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeInvalidSpan, "x"), true},
		{New(ErrCodeInconsistentPartition, "x"), true},
		{New(ErrCodeStairOutOfBounds, "x"), true},
		{New(ErrCodeInvalidTreadCount, "x"), true},
		{New(ErrCodeInvalidFormat, "x"), false},
		{New(ErrCodeInternal, "x"), false},
		{errors.New("plain"), false},
	}

	for _, tt := range tests {
		if got := IsConfiguration(tt.err); got != tt.want {
			t.Errorf("IsConfiguration(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
