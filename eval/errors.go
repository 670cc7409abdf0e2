package eval

import "fmt"

//go:generate stringer -type=ErrorKind

// ErrorKind is the failure taxonomy. Every failure aborts the whole
// evaluation; nothing is swallowed or defaulted, and callers can
// assert on the kind rather than the message.
type ErrorKind uint8

const (
	_ = ErrorKind(iota)
	UNBOUND_NAME
	UNDECLARED_ASSIGNMENT
	NOT_A_FUNCTION
	TYPE_MISMATCH
	DIVISION_BY_ZERO
	CHAINED_COMPARISON
	INVALID_INPUT
)

// Error is a failure propagating through an evaluation. It implements
// Value so that it can travel in-band through eval, and error so that
// the public API can hand it to callers directly.
type Error struct {
	Kind    ErrorKind
	Message string
}

func newError(kind ErrorKind, s string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(s, args...)}
}

func (e *Error) Type() ValueType { return VT_ERROR }
func (e *Error) Error() string   { return e.String() }
func (e *Error) String() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func isError(v Value) bool {
	_, ok := v.(*Error)
	return ok
}
