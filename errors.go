package enumext

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a construction-time validation failure.
type ErrorCode string

const (
	// CodeEmptyEnum reports a declaration with no variants.
	CodeEmptyEnum ErrorCode = "empty_enum"
	// CodeInvalidName reports a blank variant name.
	CodeInvalidName ErrorCode = "invalid_name"
	// CodeDuplicateName reports two variants declared with the same name.
	CodeDuplicateName ErrorCode = "duplicate_name"
	// CodeInconsistentDiscriminants reports a declaration that mixes explicit
	// and implicit discriminants without opting into successor values.
	CodeInconsistentDiscriminants ErrorCode = "inconsistent_discriminants"
	// CodeDiscriminantOutOfRange reports a discriminant outside the declared
	// integer type's representable range.
	CodeDiscriminantOutOfRange ErrorCode = "discriminant_out_of_range"
	// CodeDuplicateDiscriminant reports two variants resolving to the same
	// discriminant value.
	CodeDuplicateDiscriminant ErrorCode = "duplicate_discriminant"
	// CodeAmbiguousRendering reports two variant names that render to the same
	// string under one case style, making the reverse lookup ambiguous.
	CodeAmbiguousRendering ErrorCode = "ambiguous_rendering"
	// CodeInvalidIntType reports an unsupported integer type specification.
	CodeInvalidIntType ErrorCode = "invalid_int_type"
)

// Error is a construction-time validation error. It carries a machine-readable
// code plus enough detail to point at the offending variant or value.
//
// Runtime absences (unknown ordinal, unmatched rendered name, navigation past
// a boundary) are not Errors; they are reported through (value, ok) returns.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a validation error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a validation error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail returns a copy of the error with the key-value pair added to
// Details. The receiver is not modified.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// CodeOf extracts the ErrorCode from err. It returns the empty code when err
// is not an *Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
