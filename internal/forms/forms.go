// Package forms holds the request form objects. Decoding from the
// transport is gin's binding; validation is a pure Validate method so
// the constraints can be checked without an HTTP request.
package forms

import "fmt"

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func required(field, value string) *ValidationError {
	if value == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}
