package model

import "fmt"

// ValidationError is the recoverable empty/missing-answer failure. The
// controller stays in place; the caller re-prompts with Message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given user-facing text.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// SchemaError is a programmer error in the questionnaire definition. It is
// raised at schema-load time and treated as fatal, never at runtime.
type SchemaError struct {
	SectionID string
	Reason    string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema section %s: %s", e.SectionID, e.Reason)
}
