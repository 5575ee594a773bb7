package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is matched by every *Error through errors.Is.
var ErrInvalidLayout = errors.New("invalid layout")

// Code is a machine-readable layout error code.
type Code string

const (
	ErrCodePaneCount         Code = "PANE_COUNT"
	ErrCodeSplitterCount     Code = "SPLITTER_COUNT"
	ErrCodeSlotKind          Code = "SLOT_KIND"
	ErrCodeInvalidProportion Code = "INVALID_PROPORTION"
)

// Error is a configuration error detected while validating a proportion
// tree against the slots of a master pane.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is makes errors.Is(err, ErrInvalidLayout) hold for every *Error.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidLayout
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the layout error code from err or returns "".
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
