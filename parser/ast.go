package parser

import "lilt/lexer"

// The AST is a closed set of expression nodes; the whole program is one
// expression. Every node carries the token that introduced it, so that
// errors downstream can point back into the source.

type Expr interface {
	Tok() lexer.Token
	String() string
	expr()
}

// Literal is an integer, boolean or string literal. Value holds the
// unwrapped Go value (int64, bool or string).
type Literal struct {
	Token lexer.Token
	Value interface{}
}

// Identifier is a variable reference.
type Identifier struct {
	Token lexer.Token
	Name  string
}

// Unary is negation (-) or boolean not (!).
type Unary struct {
	Token lexer.Token
	Right Expr
}

// Binary covers the operators + - * / ++ == < && ||, keyed by token type.
type Binary struct {
	Token lexer.Token
	Left  Expr
	Right Expr
}

// Let is the non-recursive single binding: let name = value in body end.
type Let struct {
	Token lexer.Token
	Name  string
	Value Expr
	Body  Expr
}

// Letfun is the recursive function binding:
// letfun name(param) = body in in_ end.
type Letfun struct {
	Token lexer.Token
	Name  string
	Param string
	Body  Expr
	In    Expr
}

// App is function application; the callee may be any expression.
type App struct {
	Token lexer.Token // the '(' token
	Fn    Expr
	Arg   Expr
}

// Assign is mutation of an already-declared variable: name := value.
type Assign struct {
	Token lexer.Token
	Name  string
	Value Expr
}

// Seq evaluates First for effect and returns Second: first ; second.
type Seq struct {
	Token  lexer.Token
	First  Expr
	Second Expr
}

type If struct {
	Token lexer.Token
	Cond  Expr
	Then  Expr
	Else  Expr
}

// Replace substitutes every occurrence of Target in Str with Replacement.
type Replace struct {
	Token       lexer.Token
	Str         Expr
	Target      Expr
	Replacement Expr
}

type Reverse struct {
	Token lexer.Token
	Str   Expr
}

type Length struct {
	Token lexer.Token
	Str   Expr
}

// Show prints its operand and evaluates to it.
type Show struct {
	Token   lexer.Token
	Operand Expr
}

// Read consumes one integer from the input source.
type Read struct {
	Token lexer.Token
}

func newLiteral(tok lexer.Token, value interface{}) *Literal { return &Literal{tok, value} }
func newIdentifier(tok lexer.Token) *Identifier              { return &Identifier{tok, tok.Lexeme} }
func newUnary(tok lexer.Token, right Expr) *Unary            { return &Unary{tok, right} }
func newBinary(tok lexer.Token, left, right Expr) *Binary    { return &Binary{tok, left, right} }
func newSeq(tok lexer.Token, first, second Expr) *Seq        { return &Seq{tok, first, second} }
func newApp(tok lexer.Token, fn, arg Expr) *App              { return &App{tok, fn, arg} }

func (node *Literal) Tok() lexer.Token    { return node.Token }
func (node *Identifier) Tok() lexer.Token { return node.Token }
func (node *Unary) Tok() lexer.Token      { return node.Token }
func (node *Binary) Tok() lexer.Token     { return node.Token }
func (node *Let) Tok() lexer.Token        { return node.Token }
func (node *Letfun) Tok() lexer.Token     { return node.Token }
func (node *App) Tok() lexer.Token        { return node.Token }
func (node *Assign) Tok() lexer.Token     { return node.Token }
func (node *Seq) Tok() lexer.Token        { return node.Token }
func (node *If) Tok() lexer.Token         { return node.Token }
func (node *Replace) Tok() lexer.Token    { return node.Token }
func (node *Reverse) Tok() lexer.Token    { return node.Token }
func (node *Length) Tok() lexer.Token     { return node.Token }
func (node *Show) Tok() lexer.Token       { return node.Token }
func (node *Read) Tok() lexer.Token       { return node.Token }

func (node *Literal) expr()    {}
func (node *Identifier) expr() {}
func (node *Unary) expr()      {}
func (node *Binary) expr()     {}
func (node *Let) expr()        {}
func (node *Letfun) expr()     {}
func (node *App) expr()        {}
func (node *Assign) expr()     {}
func (node *Seq) expr()        {}
func (node *If) expr()         {}
func (node *Replace) expr()    {}
func (node *Reverse) expr()    {}
func (node *Length) expr()     {}
func (node *Show) expr()       {}
func (node *Read) expr()       {}
