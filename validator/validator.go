// Package validator provides input validation for the application
package validator

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrMissingField is returned when a required form field is absent
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidID is returned when a record id is not a positive integer
	ErrInvalidID = errors.New("invalid id")
)

// RequireFields checks that every named field is present in the form.
// A present but empty value passes; only absence is an error.
func RequireFields(form url.Values, fields ...string) error {
	for _, f := range fields {
		if _, ok := form[f]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}
	return nil
}

// ValidateID validates that an ID is positive
func ValidateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidID, id)
	}
	return nil
}
