// Package domainerrors provides coded errors for contract violations in the
// analysis core. Expected data irregularities (open cases, missing or
// unrecognized dispositions) are never represented with these errors; they
// travel as diagnostics on the record or as verdict values.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error for programmatic handling.
type Code string

const (
	// CodeInvalidInput marks input that fails validation at a trust boundary.
	CodeInvalidInput Code = "invalid_input"
	// CodeInvariantViolation marks a broken internal contract, e.g. a
	// re-entered single-shot operation or a double write to a once-only slot.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeNotFound marks a lookup miss for an identity that must exist.
	CodeNotFound Code = "not_found"
	// CodeInternal marks an unexpected failure with no more specific code.
	CodeInternal Code = "internal"
)

// Error is a coded domain error. Construct via New or Wrap.
type Error struct {
	code Code
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// Code returns the error's classification code.
func (e *Error) Code() Code { return e.code }

// New creates a domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{code: code, msg: msg}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code and message, preserving the cause for
// errors.Is / errors.As chains.
func Wrap(err error, code Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, msg: msg, err: err}
}

// HasCode reports whether any error in err's chain carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.code == code
	}
	return false
}
