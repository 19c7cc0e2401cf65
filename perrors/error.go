package perrors

import (
	"errors"
	"fmt"
)

// Error is the consensus core's error type: a closed Kind plus a
// human message, optionally wrapping an underlying error.
type Error struct {
	kind       Kind
	message    string
	pos        int
	wrappedErr error
}

// New builds an *Error of the given kind. The last element of params,
// if it is an error, is taken as the wrapped error and stripped from
// the formatting arguments — mirrors teranode's errors.New convention.
func New(kind Kind, message string, params ...interface{}) *Error {
	var wrapped error

	if n := len(params); n > 0 {
		if err, ok := params[n-1].(error); ok {
			wrapped = err
			params = params[:n-1]
		}
	}

	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}

	return &Error{kind: kind, message: message, wrappedErr: wrapped}
}

// NewNotPrime builds a KindNotPrime error for the constellation member
// at the given offset.
func NewNotPrime(pos int) *Error {
	return &Error{
		kind:    KindNotPrime,
		message: fmt.Sprintf("constellation member at offset %d is not prime", pos),
		pos:     pos,
	}
}

// NewOffsetTooLarge builds a KindOffsetTooLarge error.
func NewOffsetTooLarge(message string, params ...interface{}) *Error {
	return New(KindOffsetTooLarge, message, params...)
}

// NewWrongResidue builds a KindWrongResidue error.
func NewWrongResidue(message string, params ...interface{}) *Error {
	return New(KindWrongResidue, message, params...)
}

// NewInvalidCompact builds a KindInvalidCompact error.
func NewInvalidCompact(message string, params ...interface{}) *Error {
	return New(KindInvalidCompact, message, params...)
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.wrappedErr == nil {
		return fmt.Sprintf("%s: %s", e.kind, e.message)
	}
	return fmt.Sprintf("%s: %s: %v", e.kind, e.message, e.wrappedErr)
}

// Kind returns the error's rejection kind.
func (e *Error) Kind() Kind {
	if e == nil {
		return KindUnknown
	}
	return e.kind
}

// Message returns the formatted message without the kind prefix.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Pos returns the constellation offset for a KindNotPrime error, or -1
// for any other kind.
func (e *Error) Pos() int {
	if e == nil || e.kind != KindNotPrime {
		return -1
	}
	return e.pos
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.wrappedErr
}

// Is reports whether target (or an error target wraps) is an *Error
// with the same Kind. It does not look at e's wrapped error itself;
// errors.Is reaches that through Unwrap.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	var other *Error
	if errors.As(target, &other) {
		return e.kind == other.kind
	}
	return false
}
