package parser

import (
	"bytes"
	"fmt"
	"strconv"
)

// String renders the parenthesized form used by the parser tests.

func (node *Literal) String() string {
	switch v := node.Value.(type) {
	case string:
		return strconv.Quote(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%d", v)
	}
}

func (node *Identifier) String() string { return node.Name }

func (node *Unary) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(node.Tok().Lexeme)
	buf.WriteString(node.Right.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *Binary) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(node.Left.String())
	buf.WriteString(" ")
	buf.WriteString(node.Tok().Lexeme)
	buf.WriteString(" ")
	buf.WriteString(node.Right.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *Let) String() string {
	var buf bytes.Buffer
	buf.WriteString("let ")
	buf.WriteString(node.Name)
	buf.WriteString(" = ")
	buf.WriteString(node.Value.String())
	buf.WriteString(" in ")
	buf.WriteString(node.Body.String())
	buf.WriteString(" end")
	return buf.String()
}

func (node *Letfun) String() string {
	var buf bytes.Buffer
	buf.WriteString("letfun ")
	buf.WriteString(node.Name)
	buf.WriteString("(")
	buf.WriteString(node.Param)
	buf.WriteString(") = ")
	buf.WriteString(node.Body.String())
	buf.WriteString(" in ")
	buf.WriteString(node.In.String())
	buf.WriteString(" end")
	return buf.String()
}

func (node *App) String() string {
	var buf bytes.Buffer
	buf.WriteString(node.Fn.String())
	buf.WriteString("(")
	buf.WriteString(node.Arg.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *Assign) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(node.Name)
	buf.WriteString(" := ")
	buf.WriteString(node.Value.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *Seq) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(node.First.String())
	buf.WriteString("; ")
	buf.WriteString(node.Second.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *If) String() string {
	var buf bytes.Buffer
	buf.WriteString("if ")
	buf.WriteString(node.Cond.String())
	buf.WriteString(" then ")
	buf.WriteString(node.Then.String())
	buf.WriteString(" else ")
	buf.WriteString(node.Else.String())
	return buf.String()
}

func (node *Replace) String() string {
	var buf bytes.Buffer
	buf.WriteString("replace(")
	buf.WriteString(node.Str.String())
	buf.WriteString(", ")
	buf.WriteString(node.Target.String())
	buf.WriteString(", ")
	buf.WriteString(node.Replacement.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *Reverse) String() string { return "reverse(" + node.Str.String() + ")" }
func (node *Length) String() string  { return "length(" + node.Str.String() + ")" }
func (node *Show) String() string    { return "show(" + node.Operand.String() + ")" }
func (node *Read) String() string    { return "read" }
