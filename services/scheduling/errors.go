package scheduling

import (
	"errors"
	"fmt"
)

// Stable error codes carried by every failure the engine produces.
const (
	CodeValidation        = "validation"
	CodeNotFound          = "not_found"
	CodeSlotUnavailable   = "slot_unavailable"
	CodeForbidden         = "forbidden"
	CodeInvalidTransition = "invalid_transition"
	CodeStore             = "store"
)

// Error is a scheduling failure with a stable machine-readable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code, msg string) error {
	return &Error{Code: code, Message: msg}
}

func NewErrorf(code, format string, args ...interface{}) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the scheduling error code, or "" for foreign errors.
func CodeOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsCode reports whether err carries the given scheduling code.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}
