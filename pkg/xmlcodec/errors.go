package xmlcodec

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrNoRootElement = errors.New("document has no root element")
	ErrUnknownField  = errors.New("unknown field")
	ErrKindMismatch  = errors.New("field kind mismatch")
	ErrNotMap        = errors.New("value is not a map")
)

// MalformedXMLError reports input that is not well-formed XML. It is fatal
// and never retried at this layer.
type MalformedXMLError struct {
	Err error
}

// Error implements the error interface.
func (e *MalformedXMLError) Error() string {
	return fmt.Sprintf("malformed xml: %v", e.Err)
}

// Unwrap returns the underlying parse error.
func (e *MalformedXMLError) Unwrap() error {
	return e.Err
}

// TypeMismatchError reports scalar text that cannot be coerced to the
// field's declared scalar type. The engine never silently coerces.
type TypeMismatchError struct {
	Field string
	Raw   string
	Err   error
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q: cannot convert %q: %v", e.Field, e.Raw, e.Err)
}

// Unwrap returns the underlying conversion error.
func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}

// AmbiguousTypeError reports a polymorphic nested field whose concrete
// schema cannot be resolved against its closed variant set.
type AmbiguousTypeError struct {
	Field  string
	Schema string
}

// Error implements the error interface.
func (e *AmbiguousTypeError) Error() string {
	if e.Schema == "" {
		return fmt.Sprintf("field %q: cannot determine concrete variant", e.Field)
	}

	return fmt.Sprintf("field %q: schema %q is not a declared variant", e.Field, e.Schema)
}

// IsMalformedXML checks if the error is a malformed input error.
func IsMalformedXML(err error) bool {
	target := &MalformedXMLError{}

	return errors.As(err, &target)
}

// IsTypeMismatch checks if the error is a scalar conversion error.
func IsTypeMismatch(err error) bool {
	target := &TypeMismatchError{}

	return errors.As(err, &target)
}

// IsAmbiguousType checks if the error is an unresolved variant error.
func IsAmbiguousType(err error) bool {
	target := &AmbiguousTypeError{}

	return errors.As(err, &target)
}
