package htmlinspect

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and map well to conditions a caller can
// act on programmatically, while the error message carries the
// human-readable detail.
const (
	EINTERNAL     = "internal"     // internal error
	EINVALID      = "invalid"      // validation failed
	ENOTHTML      = "not_html"     // input is not HTML
	EINVALIDBASE  = "invalid_base" // base URL cannot be used for resolution
	EEMPTYREF     = "empty_ref"    // reference is empty or whitespace-only
	EUNRESOLVABLE = "unresolvable" // reference cannot be resolved
)

// Error represents an application-specific error. Errors can be
// unwrapped by the caller to extract the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("htmlinspect error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
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
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
