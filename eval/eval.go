package eval

// Implements the actual evaluator for the language.

import (
	"fmt"
	"io"
	"os"
	"strings"

	"lilt/lexer"
	"lilt/parser"
)

// Context carries the two collaborators the evaluator talks to: the
// sink that show writes to, and the source that read pulls integers
// from. There is no other state here; environments and stores are
// created per Evaluate call and threaded as parameters, so separate
// evaluations are fully isolated from each other.
type Context struct {
	out io.Writer
	in  InputSource
}

func NewContext(out io.Writer, in InputSource) *Context {
	if out == nil {
		out = os.Stdout
	}
	if in == nil {
		in = NewScannerSource(os.Stdin)
	}
	return &Context{out: out, in: in}
}

// Evaluate evaluates root against a fresh empty environment and store.
// On failure the returned error is an *Error carrying the failure kind.
func (ctx *Context) Evaluate(root parser.Expr) (Value, error) {
	rv := ctx.eval(root, newEnvironment(), newStore())
	if err, ok := rv.(*Error); ok {
		return nil, err
	}
	return rv, nil
}

// eval is the single recursive dispatch. The switch is total over the
// AST node set: an unhandled node is a bug in the parser or here, not
// a runtime error, so it panics.
func (ctx *Context) eval(node parser.Expr, env *Environment, store *Store) Value {
	switch node := node.(type) {
	case *parser.Literal:
		switch v := node.Value.(type) {
		case int64:
			return Int(v)
		case bool:
			return newBool(v)
		case string:
			return Str(v)
		}
	case *parser.Identifier:
		rv, ok := env.Lookup(node.Name)
		if !ok {
			return newError(UNBOUND_NAME, "undefined variable: %s", node.Name)
		}
		return rv
	case *parser.Unary:
		return ctx.evalUnary(node, env, store)
	case *parser.Binary:
		return ctx.evalBinary(node, env, store)
	case *parser.Let:
		return ctx.evalLet(node, env, store)
	case *parser.Letfun:
		return ctx.evalLetfun(node, env, store)
	case *parser.App:
		return ctx.evalApp(node, env, store)
	case *parser.Assign:
		return ctx.evalAssign(node, env, store)
	case *parser.Seq:
		first := ctx.eval(node.First, env, store)
		if isError(first) {
			return first
		}
		return ctx.eval(node.Second, env, store)
	case *parser.If:
		return ctx.evalIf(node, env, store)
	case *parser.Replace:
		return ctx.evalReplace(node, env, store)
	case *parser.Reverse:
		return ctx.evalReverse(node, env, store)
	case *parser.Length:
		return ctx.evalLength(node, env, store)
	case *parser.Show:
		return ctx.evalShow(node, env, store)
	case *parser.Read:
		return ctx.evalRead()
	}
	panic(fmt.Sprintf("unhandled node %#+v", node))
}

// ========
// Bindings
// ========

func (ctx *Context) evalLet(node *parser.Let, env *Environment, store *Store) Value {
	// let is non-recursive: the initializer cannot see its own binding.
	value := ctx.eval(node.Value, env, store)
	if isError(value) {
		return value
	}
	return ctx.eval(node.Body, env.Extend(node.Name, value), store)
}

func (ctx *Context) evalLetfun(node *parser.Letfun, env *Environment, store *Store) Value {
	fn := &Closure{Name: node.Name, Param: node.Param, Body: node.Body}
	frame := env.BindSelf(fn)
	return ctx.eval(node.In, frame, store)
}

func (ctx *Context) evalApp(node *parser.App, env *Environment, store *Store) Value {
	callee := ctx.eval(node.Fn, env, store)
	if isError(callee) {
		return callee
	}
	fn, ok := callee.(*Closure)
	if !ok {
		return newError(NOT_A_FUNCTION, "'%s' is not a function", Inspect(callee))
	}
	// call-by-value: the argument is evaluated in the caller's
	// environment before the call frame exists.
	arg := ctx.eval(node.Arg, env, store)
	if isError(arg) {
		return arg
	}
	// lexical scoping: the body sees the closure's captured
	// environment plus the parameter, never the caller's locals.
	return ctx.eval(fn.Body, fn.Env.Extend(fn.Param, arg), store)
}

func (ctx *Context) evalAssign(node *parser.Assign, env *Environment, store *Store) Value {
	if _, ok := env.Lookup(node.Name); !ok {
		return newError(UNDECLARED_ASSIGNMENT, "variable '%s' is not defined", node.Name)
	}
	value := ctx.eval(node.Value, env, store)
	if isError(value) {
		return value
	}
	store.Assign(node.Name, value)
	return value
}

// =========
// Operators
// =========

func (ctx *Context) evalUnary(node *parser.Unary, env *Environment, store *Store) Value {
	right := ctx.eval(node.Right, env, store)
	if isError(right) {
		return right
	}
	switch node.Token.Type {
	case lexer.MINUS:
		n, ok := right.(Int)
		if !ok {
			return newError(TYPE_MISMATCH, "negation requires an integer operand, got %s", right.Type())
		}
		return Int(-n)
	case lexer.BANG:
		b, ok := right.(Bool)
		if !ok {
			return newError(TYPE_MISMATCH, "! requires a boolean operand, got %s", right.Type())
		}
		return newBool(!bool(b))
	}
	panic(fmt.Sprintf("unhandled unary operator %s", node.Token.Type))
}

func (ctx *Context) evalBinary(node *parser.Binary, env *Environment, store *Store) Value {
	op := node.Token.Type
	// chained comparison is a shape check on the AST: it happens
	// before either side is evaluated.
	if op == lexer.EQUAL_EQUAL {
		if l, ok := node.Left.(*parser.Binary); ok {
			if l.Token.Type == lexer.EQUAL_EQUAL || l.Token.Type == lexer.LESS {
				return newError(CHAINED_COMPARISON,
					"'==' cannot take the comparison '%s' as its left operand", l.Token.Lexeme)
			}
		}
	}
	// left-to-right, and strict: even && and || evaluate both sides.
	left := ctx.eval(node.Left, env, store)
	if isError(left) {
		return left
	}
	right := ctx.eval(node.Right, env, store)
	if isError(right) {
		return right
	}
	switch op {
	case lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH:
		return evalArith(op, left, right)
	case lexer.AND_AND, lexer.OR_OR:
		l, lok := left.(Bool)
		r, rok := right.(Bool)
		if !lok || !rok {
			return newError(TYPE_MISMATCH, "%s requires boolean operands, got %s and %s",
				node.Token.Lexeme, left.Type(), right.Type())
		}
		if op == lexer.AND_AND {
			return newBool(bool(l) && bool(r))
		}
		return newBool(bool(l) || bool(r))
	case lexer.EQUAL_EQUAL:
		return evalEq(left, right)
	case lexer.LESS:
		return evalLt(left, right)
	case lexer.PLUS_PLUS:
		l, lok := left.(Str)
		r, rok := right.(Str)
		if !lok || !rok {
			return newError(TYPE_MISMATCH, "concatenation requires string operands, got %s and %s",
				left.Type(), right.Type())
		}
		return Str(string(l) + string(r))
	}
	panic(fmt.Sprintf("unhandled binary operator %s", op))
}

func evalArith(op lexer.TokenType, left, right Value) Value {
	l, lok := left.(Int)
	r, rok := right.(Int)
	if !lok || !rok {
		return newError(TYPE_MISMATCH, "arithmetic requires integer operands, got %s and %s",
			left.Type(), right.Type())
	}
	switch op {
	case lexer.PLUS:
		return Int(l + r)
	case lexer.MINUS:
		return Int(l - r)
	case lexer.STAR:
		return Int(l * r)
	case lexer.SLASH:
		if r == 0 {
			return newError(DIVISION_BY_ZERO, "division by zero")
		}
		return Int(floorDiv(int64(l), int64(r)))
	}
	panic(fmt.Sprintf("unhandled arithmetic operator %s", op))
}

// floorDiv rounds the quotient toward negative infinity, as opposed
// to Go's native truncation toward zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func evalEq(left, right Value) Value {
	if left.Type() != right.Type() {
		return newError(TYPE_MISMATCH, "'==' requires operands of the same type, got %s and %s",
			left.Type(), right.Type())
	}
	switch l := left.(type) {
	case Int:
		return newBool(l == right.(Int))
	case Bool:
		return newBool(l == right.(Bool))
	case Str:
		return newBool(l == right.(Str))
	case *Closure:
		// closures compare by identity
		return newBool(l == right.(*Closure))
	}
	panic(fmt.Sprintf("unhandled operand in ==: %#+v", left))
}

func evalLt(left, right Value) Value {
	switch l := left.(type) {
	case Int:
		if r, ok := right.(Int); ok {
			return newBool(l < r)
		}
	case Str:
		if r, ok := right.(Str); ok {
			return newBool(l < r)
		}
	}
	return newError(TYPE_MISMATCH, "'<' requires two integers or two strings, got %s and %s",
		left.Type(), right.Type())
}

// ============
// Conditionals
// ============

func (ctx *Context) evalIf(node *parser.If, env *Environment, store *Store) Value {
	cond := ctx.eval(node.Cond, env, store)
	if isError(cond) {
		return cond
	}
	b, ok := cond.(Bool)
	if !ok {
		return newError(TYPE_MISMATCH, "condition must be boolean, got %s", cond.Type())
	}
	if b {
		return ctx.eval(node.Then, env, store)
	}
	return ctx.eval(node.Else, env, store)
}

// =======
// Strings
// =======

func (ctx *Context) evalReplace(node *parser.Replace, env *Environment, store *Store) Value {
	str := ctx.eval(node.Str, env, store)
	if isError(str) {
		return str
	}
	target := ctx.eval(node.Target, env, store)
	if isError(target) {
		return target
	}
	repl := ctx.eval(node.Replacement, env, store)
	if isError(repl) {
		return repl
	}
	s, sok := str.(Str)
	t, tok := target.(Str)
	r, rok := repl.(Str)
	if !sok || !tok || !rok {
		return newError(TYPE_MISMATCH, "replace requires string operands, got %s, %s and %s",
			str.Type(), target.Type(), repl.Type())
	}
	return Str(strings.ReplaceAll(string(s), string(t), string(r)))
}

func (ctx *Context) evalReverse(node *parser.Reverse, env *Environment, store *Store) Value {
	str := ctx.eval(node.Str, env, store)
	if isError(str) {
		return str
	}
	s, ok := str.(Str)
	if !ok {
		return newError(TYPE_MISMATCH, "reverse requires a string operand, got %s", str.Type())
	}
	runes := []rune(string(s))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return Str(string(runes))
}

func (ctx *Context) evalLength(node *parser.Length, env *Environment, store *Store) Value {
	str := ctx.eval(node.Str, env, store)
	if isError(str) {
		return str
	}
	s, ok := str.(Str)
	if !ok {
		return newError(TYPE_MISMATCH, "length requires a string operand, got %s", str.Type())
	}
	return Int(int64(len([]rune(string(s)))))
}

// ===
// I/O
// ===

func (ctx *Context) evalShow(node *parser.Show, env *Environment, store *Store) Value {
	value := ctx.eval(node.Operand, env, store)
	if isError(value) {
		return value
	}
	fmt.Fprintln(ctx.out, Display(value))
	return value
}

func (ctx *Context) evalRead() Value {
	n, err := ctx.in.NextInteger()
	if err != nil {
		return newError(INVALID_INPUT, "invalid input, expected an integer")
	}
	return Int(n)
}
