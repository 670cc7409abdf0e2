package eval

import (
	"io"

	"lilt/lexer"
	"lilt/parser"
)

// InteractiveContext wraps the lex → parse → evaluate pipeline for the
// REPL and the script runner. Each Run is a complete program against a
// fresh environment and store; no interpreter state survives between
// calls, only the I/O collaborators are shared.
type InteractiveContext struct {
	Filename string
	ctx      *Context
}

func NewInteractiveContext(filename string, out io.Writer, in InputSource) *InteractiveContext {
	return &InteractiveContext{
		Filename: filename,
		ctx:      NewContext(out, in),
	}
}

func (ic *InteractiveContext) Run(input string) (Value, []error) {
	l := lexer.New(ic.Filename, input)
	l.ScanTokens()
	if len(l.Errors) != 0 {
		errs := make([]error, len(l.Errors))
		for i := range l.Errors {
			errs[i] = &l.Errors[i]
		}
		return nil, errs
	}
	p := parser.New(ic.Filename, l.Tokens)
	expr := p.Parse()
	if len(p.Errors) != 0 {
		errs := make([]error, len(p.Errors))
		for i := range p.Errors {
			errs[i] = p.Errors[i]
		}
		return nil, errs
	}
	rv, err := ic.ctx.Evaluate(expr)
	if err != nil {
		return nil, []error{err}
	}
	return rv, nil
}
