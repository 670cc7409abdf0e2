package eval

import (
	"fmt"
	"strconv"
)

// Display renders a value the way show prints it: strings raw, booleans
// lowercase, functions by name.
func Display(v Value) string {
	switch v := v.(type) {
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case Bool:
		if v {
			return "true"
		}
		return "false"
	case Str:
		return string(v)
	case *Closure:
		return fmt.Sprintf("<function %s>", v.Name)
	case *Error:
		return v.String()
	}
	panic(fmt.Sprintf("unhandled value %#+v", v))
}

// Inspect is the REPL rendering: like Display, except strings are
// quoted so that "1" and 1 read differently.
func Inspect(v Value) string {
	if s, ok := v.(Str); ok {
		return strconv.Quote(string(s))
	}
	return Display(v)
}
