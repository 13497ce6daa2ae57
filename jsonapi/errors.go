package jsonapi

import (
	"errors"
	"fmt"
)

// ErrMalformedDocument marks documents the parser cannot make sense of:
// a top level that is not an object, missing primary data, or invalid
// resource identifier objects on relationship endpoints. Concrete reasons
// are wrapped around it.
var ErrMalformedDocument = errors.New("malformed JSON:API document")

func malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedDocument, fmt.Sprintf(format, args...))
}

// ResourceTypeConflictError is returned when the declared type of a primary
// resource object is not among the resource names the endpoint accepts.
type ResourceTypeConflictError struct {
	Declared string
	Allowed  AllowedTypes
}

func (e *ResourceTypeConflictError) Error() string {
	return fmt.Sprintf(
		"the resource object's type (%s) is not the type that constitute the collection represented by the endpoint (%s)",
		e.Declared, e.Allowed,
	)
}
