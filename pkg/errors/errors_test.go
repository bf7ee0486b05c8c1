package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownTier, "test message: %s", "value")

	if err.Code != ErrCodeUnknownTier {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnknownTier)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "UNKNOWN_TIER: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidConfig, cause, "failed to decode")

	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidConfig)
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
}

func TestIs(t *testing.T) {
	err := New(ErrCodeMissingTemplate, "no template")
	wrapped := fmt.Errorf("assemble: %w", err)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct match", err, ErrCodeMissingTemplate, true},
		{"wrapped match", wrapped, ErrCodeMissingTemplate, true},
		{"different code", err, ErrCodeUnknownNode, false},
		{"plain error", errors.New("x"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	v := &ValidationError{}
	v.Add(ErrCodeUnknownNode, "edges[0].to", "node %q does not exist", "GHOST")
	v.Add(ErrCodeDuplicateID, "nodes[2].id", "duplicate node id %q", "A")
	err := fmt.Errorf("validate: %w", v)

	if !Is(err, ErrCodeUnknownNode) {
		t.Error("Is(UNKNOWN_NODE) = false, want true")
	}
	if !Is(err, ErrCodeDuplicateID) {
		t.Error("Is(DUPLICATE_ID) = false, want true")
	}
	if Is(err, ErrCodeUnknownTier) {
		t.Error("Is(UNKNOWN_TIER) = true, want false")
	}
	if got := GetCode(err); got != ErrCodeUnknownNode {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeUnknownNode)
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "x")); got != ErrCodeNotFound {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeNotFound)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidFormat, "unsupported format %q", "bmp")); got != `unsupported format "bmp"` {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q", got)
	}
}
