package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeEmptyPool, "no matching %s", "NOUNS")

	if err.Code != ErrCodeEmptyPool {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeEmptyPool)
	}

	if err.Message != "no matching NOUNS" {
		t.Errorf("Message = %v, want %v", err.Message, "no matching NOUNS")
	}

	expected := "EMPTY_POOL: no matching NOUNS"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeLexiconLoad, cause, "reading wordbank.json")

	if err.Code != ErrCodeLexiconLoad {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeLexiconLoad)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
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
			err:      New(ErrCodeNoSelection, "test"),
			code:     ErrCodeNoSelection,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeNoSelection, "test"),
			code:     ErrCodeEmptyPool,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeLexiconLoad, New(ErrCodeInvalidPath, "inner"), "outer"),
			code:     ErrCodeLexiconLoad,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeNoSelection,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeNoSelection,
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
			name:     "structured error",
			err:      New(ErrCodeNothingPlaced, "test"),
			expected: ErrCodeNothingPlaced,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
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

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "structured error strips code",
			err:      New(ErrCodeEmptyPool, "no matching VERBS"),
			expected: "no matching VERBS",
		},
		{
			name:     "plain error unchanged",
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
