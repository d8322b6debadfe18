package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownUnit, "unknown unit: %s", "flib")

	if err.Code != ErrCodeUnknownUnit {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeUnknownUnit)
	}
	if err.Message != "unknown unit: flib" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "UNKNOWN_UNIT: unknown unit: flib"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("file missing")
	err := Wrap(ErrCodeInvalidConfig, cause, "load %s", "unitkit.toml")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
	want := "INVALID_CONFIG: load unitkit.toml: file missing"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeDuplicatePrefix, "prefix exists: k")

	if !Is(err, ErrCodeDuplicatePrefix) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeUnknownPrefix) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeDuplicatePrefix) {
		t.Error("Is() should not match a plain error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeUnknownPrefix, "no such prefix: x")
	outer := fmt.Errorf("resolving: %w", inner)

	if !Is(outer, ErrCodeUnknownPrefix) {
		t.Error("Is() should find the code through fmt.Errorf wrapping")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeDomain, "negative radius")); got != ErrCodeDomain {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeDomain)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeIncompatibleDimensions, "cannot add m to kg")
	if got := UserMessage(err); got != "cannot add m to kg" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestValidateSymbol(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		valid  bool
	}{
		{"simple", "N", true},
		{"multi rune", "mmHg", true},
		{"unicode", "Ω", true},
		{"empty", "", false},
		{"with star", "k*m", false},
		{"with slash", "m/s", false},
		{"with caret", "m^2", false},
		{"with space", "k m", false},
		{"leading digit", "2x", false},
		{"control char", "k\x00", false},
		{"too long", "aaaaaaaaaaaaaaaaa", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSymbol(tt.symbol)
			if tt.valid && err != nil {
				t.Errorf("ValidateSymbol(%q) = %v, want nil", tt.symbol, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("ValidateSymbol(%q) = nil, want error", tt.symbol)
			}
			if !tt.valid && err != nil && !Is(err, ErrCodeInvalidSymbol) {
				t.Errorf("ValidateSymbol(%q) code = %q, want %q", tt.symbol, GetCode(err), ErrCodeInvalidSymbol)
			}
		})
	}
}
