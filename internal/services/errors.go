package services

import "fmt"

// ValidationError marks bad client input; handlers map it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// LLMParseError is returned when the model answered but the payload was not
// the JSON we asked for. Raw carries the model text for the error response.
type LLMParseError struct {
	Raw string
	Err error
}

func (e *LLMParseError) Error() string {
	return fmt.Sprintf("failed to parse LLM JSON: %v", e.Err)
}

func (e *LLMParseError) Unwrap() error { return e.Err }
