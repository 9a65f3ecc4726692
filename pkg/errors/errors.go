// Package errors defines the coded errors logtrack reports to callers.
//
// Every failure a user can fix carries a [Code], so the CLI can print a
// clean message and the HTTP layer can pick a status without parsing text.
// Codes group by prefix: INVALID_* for rejected input, UNKNOWN_* for names
// that resolve to nothing, NOT_FOUND for missing resources and
// INTERNAL_ERROR or UNSUPPORTED for everything else.
//
// The generator core reports exactly two codes: [ErrCodeInvalidRange] for bad
// depth, step or tick arguments and [ErrCodeUnknownTrackSpec] for malformed
// track layouts. Both are detected before any output is produced.
//
//	err := errors.New(errors.ErrCodeInvalidRange, "step must be positive, got %g", step)
//	if errors.Is(err, errors.ErrCodeInvalidRange) {
//	    // reject the request
//	}
//
//	err = errors.Wrap(errors.ErrCodeInvalidScene, decodeErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Rejected input. Everything in this group satisfies [IsValidation]
	// except ErrCodeUnknownExample, which the HTTP layer reports as 404.
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidRange     Code = "INVALID_RANGE"
	ErrCodeUnknownTrackSpec Code = "UNKNOWN_TRACK_SPEC"
	ErrCodeUnknownExample   Code = "UNKNOWN_EXAMPLE"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle     Code = "INVALID_STYLE"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeInvalidScene     Code = "INVALID_SCENE"

	ErrCodeNotFound Code = "NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a coded error. Message is safe to show to users; Cause, when
// set, is kept for errors.Is and errors.As.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := asError(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix for coded
// errors and err.Error() otherwise.
func UserMessage(err error) string {
	if e, ok := asError(err); ok {
		return e.Message
	}
	return err.Error()
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// IsValidation reports whether err carries one of the input validation codes.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidRange, ErrCodeUnknownTrackSpec,
		ErrCodeInvalidFormat, ErrCodeInvalidStyle, ErrCodeInvalidPath, ErrCodeInvalidScene:
		return true
	}
	return false
}
