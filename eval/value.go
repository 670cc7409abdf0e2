package eval

import "lilt/parser"

//go:generate stringer -type=ValueType

type ValueType uint8

const (
	_ = ValueType(iota)
	VT_INT
	VT_BOOL
	VT_STR
	VT_FUNCTION
	VT_ERROR
)

// Value is the closed set of runtime values. There is no coercion
// between variants anywhere: every operator checks the variants of
// its operands and fails rather than converting.
type Value interface {
	Type() ValueType
}

type (
	Int  int64
	Bool bool
	Str  string
)

// Closure is a function value: one parameter, a body, and the
// environment captured at its letfun. Env already contains Name bound
// to the closure itself, which is what makes recursion work.
type Closure struct {
	Name  string
	Param string
	Body  parser.Expr
	Env   *Environment
}

func (v Int) Type() ValueType      { return VT_INT }
func (v Bool) Type() ValueType     { return VT_BOOL }
func (v Str) Type() ValueType      { return VT_STR }
func (v *Closure) Type() ValueType { return VT_FUNCTION }

// ==========
// Singletons
// ==========

var (
	TRUE  = Bool(true)
	FALSE = Bool(false)
)

func newBool(b bool) Value {
	if b {
		return TRUE
	}
	return FALSE
}
