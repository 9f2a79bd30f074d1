package bookalope

import "fmt"

// Error is the single error type returned by this library. Callers
// distinguish failure causes by message content; there are no structured
// error codes.
type Error struct {
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap exposes the underlying cause, if any, for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

func wrapError(cause error, format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...), cause: cause}
}
