package browseruse

import (
	"errors"
	"fmt"
)

// Application error codes. These map 1:1 onto the conditions the automation
// boundary cares about; everything else is EINTERNAL.
const (
	EINVALID        = "invalid"        // validation failed
	ENOTFOUND       = "not_found"      // entity does not exist
	ENODOCUMENT     = "no_document"    // no accessible document in the target context
	EUNSERIALIZABLE = "unserializable" // produced structure cannot cross the boundary
	EINTERNAL       = "internal"       // internal error
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the constants above.
	Code string

	// Message is a human-readable description safe to show to users.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("browseruse error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns "".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf constructs an *Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
