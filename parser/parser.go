package parser

import "lilt/lexer"

type (
	unaryParser  func() Expr
	binaryParser func(Expr) Expr
)

type Parser struct {
	filename      string
	tokens        []lexer.Token
	Errors        []ParserError
	curr          int // how many we have consumed.
	unaryParsers  map[lexer.TokenType]unaryParser
	binaryParsers map[lexer.TokenType]binaryParser
	precedences   map[lexer.TokenType]int
}

const (
	PREC_LOWEST  = iota
	PREC_SEQ     // ;
	PREC_ASSIGN  // :=
	PREC_OR      // ||
	PREC_AND     // &&
	PREC_CMP     // ==, <
	PREC_CONCAT  // ++
	PREC_SUM     // +, -
	PREC_PRODUCT // *, /
	PREC_UNARY   // !, -
	PREC_CALL    // f(x)
)

// ====
// init
// ====

func New(fn string, tokens []lexer.Token) *Parser {
	p := &Parser{
		filename: fn,
		tokens:   tokens,
		Errors:   []ParserError{},
		curr:     0,
	}
	p.unaryParsers = map[lexer.TokenType]unaryParser{
		lexer.LEFT_PAREN: p.grouping,
		lexer.IDENTIFIER: p.identifier,
		lexer.NUMBER:     p.literal,
		lexer.STRING:     p.literal,
		lexer.TRUE:       p.literal,
		lexer.FALSE:      p.literal,
		lexer.BANG:       p.unary,
		lexer.MINUS:      p.unary,
		lexer.LET:        p.letExpr,
		lexer.LETFUN:     p.letfunExpr,
		lexer.IF:         p.ifExpr,
		lexer.REPLACE:    p.replaceExpr,
		lexer.REVERSE:    p.reverseExpr,
		lexer.LENGTH:     p.lengthExpr,
		lexer.SHOW:       p.showExpr,
		lexer.READ:       p.readExpr,
	}
	// note: need to make sure that every entry in binaryParsers
	// has a corresponding entry in precedences.
	p.binaryParsers = map[lexer.TokenType]binaryParser{
		lexer.SEMICOLON:   p.seq,
		lexer.COLON_EQUAL: p.assign,
		lexer.OR_OR:       p.binary,
		lexer.AND_AND:     p.binary,
		lexer.EQUAL_EQUAL: p.binary,
		lexer.LESS:        p.binary,
		lexer.BANG_EQUAL:  p.notEq,
		lexer.PLUS_PLUS:   p.binary,
		lexer.PLUS:        p.binary,
		lexer.MINUS:       p.binary,
		lexer.STAR:        p.binary,
		lexer.SLASH:       p.binary,
		lexer.LEFT_PAREN:  p.call,
	}
	p.precedences = map[lexer.TokenType]int{
		lexer.SEMICOLON:   PREC_SEQ,
		lexer.COLON_EQUAL: PREC_ASSIGN,
		lexer.OR_OR:       PREC_OR,
		lexer.AND_AND:     PREC_AND,
		lexer.EQUAL_EQUAL: PREC_CMP,
		lexer.LESS:        PREC_CMP,
		lexer.BANG_EQUAL:  PREC_CMP,
		lexer.PLUS_PLUS:   PREC_CONCAT,
		lexer.PLUS:        PREC_SUM,
		lexer.MINUS:       PREC_SUM,
		lexer.STAR:        PREC_PRODUCT,
		lexer.SLASH:       PREC_PRODUCT,
		lexer.LEFT_PAREN:  PREC_CALL,
	}
	return p
}

// =====
// utils
// =====

// consume consumes one token
func (p *Parser) consume() lexer.Token {
	if !p.isAtEnd() {
		p.curr++
	}
	return p.previous()
}

// previous returns the most recently consumed token
func (p *Parser) previous() lexer.Token { return p.tokens[p.curr-1] }

// peek returns the token to be consumed
func (p *Parser) peek() lexer.Token { return p.tokens[p.curr] }

// isAtEnd returns true if the current token is an EOF token
func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF }

// check returns if the peek token matches the given type
func (p *Parser) check(t lexer.TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == t
}

// match consumes the token if it matches any of the given types
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.consume()
			return true
		}
	}
	return false
}

// ===========
// entry point
// ===========

// Parse parses the whole input as a single expression. On failure it
// returns nil, with the failure recorded in .Errors.
func (p *Parser) Parse() (expr Expr) {
	defer func() {
		if rv := recover(); rv != nil {
			if _, ok := rv.(ParserError); ok {
				expr = nil
				return
			}
			panic(rv)
		}
	}()
	expr = p.expression()
	if !p.isAtEnd() {
		p.error(p.peek(), "unexpected input after expression: %s", p.peek().Type)
	}
	return expr
}

// ==================
// expression parsing
// ==================
//
// the grammar, loosest binding first:
//
//   expr    → seq
//   seq     → expr ";" expr             (left-assoc)
//   assign  → IDENT ":=" expr           (right-assoc)
//   or      → expr "||" expr
//   and     → expr "&&" expr
//   cmp     → expr ("==" | "<") expr    (left-assoc; the evaluator rejects
//                                        an == whose left child is ==/<)
//   concat  → expr "++" expr
//   sum     → expr ("+" | "-") expr
//   product → expr ("*" | "/") expr
//   unary   → ("-" | "!") expr
//   call    → expr "(" expr ")"
//   primary → NUMBER | STRING | "true" | "false" | IDENT | "(" expr ")"
//           | "let" IDENT "=" expr "in" expr "end"
//           | "letfun" IDENT "(" IDENT ")" "=" expr "in" expr "end"
//           | "if" expr "then" expr "else" expr
//           | "replace" "(" expr "," expr "," expr ")"
//           | "reverse" "(" expr ")" | "length" "(" expr ")"
//           | "show" "(" expr ")" | "read"

// expression matches a single expression.
func (p *Parser) expression() Expr { return p.precedence(PREC_LOWEST) }
func (p *Parser) precedence(prec int) Expr {
	unary, ok := p.unaryParsers[p.peek().Type]
	if !ok {
		p.error(p.peek(), "not an expression: %s", p.peek().Type)
	}
	expr := unary()
	for prec < p.peekPrecedence() {
		expr = p.binaryParsers[p.peek().Type](expr)
	}
	return expr
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := p.precedences[p.peek().Type]; ok {
		return prec
	}
	return PREC_LOWEST
}

func (p *Parser) unary() Expr {
	tok := p.consume()
	return newUnary(tok, p.precedence(PREC_UNARY-1))
}

func (p *Parser) grouping() Expr {
	p.consume()
	expr := p.expression()
	p.expect(lexer.RIGHT_PAREN, "unmatched (")
	return expr
}

func (p *Parser) binary(left Expr) Expr {
	tok := p.consume()
	return newBinary(tok, left, p.precedence(p.precedences[tok.Type]))
}

func (p *Parser) seq(left Expr) Expr {
	tok := p.consume()
	return newSeq(tok, left, p.precedence(PREC_SEQ))
}

func (p *Parser) assign(left Expr) Expr {
	tok := p.consume()
	right := p.precedence(PREC_ASSIGN - 1)
	switch left := left.(type) {
	case *Identifier:
		return &Assign{Token: tok, Name: left.Name, Value: right}
	default:
		p.error(left.Tok(), "invalid assignment target")
		return nil
	}
}

// notEq matches the grammar's explicit rejection of '!='.
func (p *Parser) notEq(left Expr) Expr {
	p.error(p.peek(), "unexpected '!=' operator")
	return nil
}

func (p *Parser) call(left Expr) Expr {
	tok := p.consume()
	arg := p.expression()
	p.expect(lexer.RIGHT_PAREN, "unclosed ( in call")
	return newApp(tok, left, arg)
}

func (p *Parser) identifier() Expr {
	tok := p.consume()
	return newIdentifier(tok)
}

func (p *Parser) literal() Expr {
	tok := p.consume()
	switch tok.Type {
	case lexer.TRUE:
		return newLiteral(tok, true)
	case lexer.FALSE:
		return newLiteral(tok, false)
	default:
		return newLiteral(tok, tok.Literal)
	}
}

func (p *Parser) letExpr() Expr {
	tok := p.consume()
	name := p.expect(lexer.IDENTIFIER, "expected an identifier after let")
	p.expect(lexer.EQUAL, "expected = after let name")
	value := p.expression()
	p.expect(lexer.IN, "expected in after let binding")
	body := p.expression()
	p.expect(lexer.END, "expected end to close let")
	return &Let{Token: tok, Name: name.Lexeme, Value: value, Body: body}
}

func (p *Parser) letfunExpr() Expr {
	tok := p.consume()
	name := p.expect(lexer.IDENTIFIER, "expected an identifier after letfun")
	p.expect(lexer.LEFT_PAREN, "expected ( after letfun name")
	param := p.expect(lexer.IDENTIFIER, "expected a parameter name")
	p.expect(lexer.RIGHT_PAREN, "unclosed ( in letfun parameter list")
	p.expect(lexer.EQUAL, "expected = after letfun header")
	body := p.expression()
	p.expect(lexer.IN, "expected in after letfun body")
	in := p.expression()
	p.expect(lexer.END, "expected end to close letfun")
	return &Letfun{Token: tok, Name: name.Lexeme, Param: param.Lexeme, Body: body, In: in}
}

func (p *Parser) ifExpr() Expr {
	tok := p.consume()
	cond := p.expression()
	p.expect(lexer.THEN, "expected then after if condition")
	then := p.precedence(PREC_SEQ)
	p.expect(lexer.ELSE, "expected else after then branch")
	els := p.precedence(PREC_SEQ)
	return &If{Token: tok, Cond: cond, Then: then, Else: els}
}

func (p *Parser) replaceExpr() Expr {
	tok := p.consume()
	p.expect(lexer.LEFT_PAREN, "expected ( after replace")
	str := p.expression()
	p.expect(lexer.COMMA, "expected , after replace subject")
	target := p.expression()
	p.expect(lexer.COMMA, "expected , after replace target")
	repl := p.expression()
	p.expect(lexer.RIGHT_PAREN, "unclosed ( in replace")
	return &Replace{Token: tok, Str: str, Target: target, Replacement: repl}
}

func (p *Parser) reverseExpr() Expr {
	tok := p.consume()
	p.expect(lexer.LEFT_PAREN, "expected ( after reverse")
	str := p.expression()
	p.expect(lexer.RIGHT_PAREN, "unclosed ( in reverse")
	return &Reverse{Token: tok, Str: str}
}

func (p *Parser) lengthExpr() Expr {
	tok := p.consume()
	p.expect(lexer.LEFT_PAREN, "expected ( after length")
	str := p.expression()
	p.expect(lexer.RIGHT_PAREN, "unclosed ( in length")
	return &Length{Token: tok, Str: str}
}

func (p *Parser) showExpr() Expr {
	tok := p.consume()
	p.expect(lexer.LEFT_PAREN, "expected ( after show")
	operand := p.expression()
	p.expect(lexer.RIGHT_PAREN, "unclosed ( in show")
	return &Show{Token: tok, Operand: operand}
}

func (p *Parser) readExpr() Expr {
	tok := p.consume()
	return &Read{Token: tok}
}
