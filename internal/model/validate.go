package model

import (
	"strings"
	"unicode/utf8"
)

// minInstructionsLen counts runes on the raw string, not trimmed.
const minInstructionsLen = 50

// ValidationError is a rejected field value. Message is surfaced to the
// client verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateUsername rejects empty or all-whitespace usernames.
func ValidateUsername(value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: "username", Message: "Username must be present."}
	}
	return nil
}

// ValidateTitle rejects empty or all-whitespace titles.
func ValidateTitle(value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: "title", Message: "Title must be present."}
	}
	return nil
}

// ValidateInstructions rejects instructions shorter than 50 characters.
// Length is counted in runes, not bytes, so multi-byte text is not given
// extra credit. The check runs on the untrimmed string.
func ValidateInstructions(value string) error {
	if utf8.RuneCountInString(value) < minInstructionsLen {
		return &ValidationError{Field: "instructions", Message: "Instructions must be at least 50 characters long."}
	}
	return nil
}
