package errors

import (
	"strings"
	"unicode"
)

// reservedSymbolRunes are characters with structural meaning in unit
// expressions and therefore not allowed inside a registered symbol.
const reservedSymbolRunes = "*/^. \t·"

// ValidateSymbol validates a unit or prefix symbol before registration.
// It rejects symbols that would be unparseable or ambiguous in unit
// expressions.
//
// The validation rules are intentionally conservative:
//   - No empty symbols (the empty prefix is built in, never registered)
//   - No control characters or whitespace
//   - No expression metacharacters (*, /, ^, .)
//   - No digits in the leading position (would merge with values)
//   - Maximum length of 16 characters
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return New(ErrCodeInvalidSymbol, "symbol cannot be empty")
	}

	if len(symbol) > 16 {
		return New(ErrCodeInvalidSymbol, "symbol too long (max 16 characters)")
	}

	for i, r := range symbol {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSymbol, "symbol contains control characters")
		}
		if i == 0 && unicode.IsDigit(r) {
			return New(ErrCodeInvalidSymbol, "symbol cannot start with a digit")
		}
	}

	if strings.ContainsAny(symbol, reservedSymbolRunes) {
		return New(ErrCodeInvalidSymbol, "symbol contains reserved characters: %q", symbol)
	}

	return nil
}
