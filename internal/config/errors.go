package config

import (
	"errors"
	"strings"
)

// ErrNoBirthDate is matched by errors.Is when a required birth date is missing.
var ErrNoBirthDate = errors.New("birth date is required")

// FieldError is a validation failure on one profile field.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every field failure of one validation pass.
type ValidationErrors []*FieldError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, fe := range ve {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual field errors to errors.Is and errors.As.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, len(ve))
	for i, fe := range ve {
		errs[i] = fe
	}
	return errs
}

// Field returns the message for field, or "" if it passed.
func (ve ValidationErrors) Field(field string) string {
	for _, fe := range ve {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}
