package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a requested store or review does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotOwner is returned when an edit is attempted by a non-owner.
	ErrNotOwner = errors.New("store can only be edited by its owner")
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects all field-level problems found before a write.
type ValidationError struct {
	Fields []FieldError
}

// Add appends a field error.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// AsValidationError unwraps err into a ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
