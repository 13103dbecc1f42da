package errors

import (
	"strings"
	"unicode"
)

// MaxIdentifierLength bounds identifiers accepted by the CLI and the HTTP
// server. The digest package hashes any string; the limit applies to user
// input only.
const MaxIdentifierLength = 1024

// ValidateHexLength checks that s has exactly n characters. The check is
// byte-based: any multi-byte rune would fail the charset check anyway.
func ValidateHexLength(field, s string, n int) error {
	if len(s) != n {
		return New(ErrCodeInvalidInput, "%s must be exactly %d characters long (got %d)", field, n, len(s))
	}
	return nil
}

// ValidateHexChars checks that every character of s is a hexadecimal digit.
// Both cases are accepted.
func ValidateHexChars(field, s string) error {
	for i := 0; i < len(s); i++ {
		if !IsHexDigit(s[i]) {
			return New(ErrCodeInvalidInput, "%s must only contain hexadecimal characters (0-9, a-f)", field)
		}
	}
	return nil
}

// ValidateHex runs the length check followed by the charset check.
func ValidateHex(field, s string, n int) error {
	if err := ValidateHexLength(field, s, n); err != nil {
		return err
	}
	return ValidateHexChars(field, s)
}

// IsHexDigit reports whether c is 0-9, a-f or A-F.
func IsHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// ValidateIdentifier validates a user-supplied identifier.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - Maximum length of MaxIdentifierLength bytes
func ValidateIdentifier(id string) error {
	if strings.TrimSpace(id) == "" {
		return New(ErrCodeInvalidInput, "identifier cannot be empty")
	}

	if len(id) > MaxIdentifierLength {
		return New(ErrCodeInvalidInput, "identifier too long (max %d characters)", MaxIdentifierLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "identifier contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates an output path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
