package eval_test

import (
	"bytes"
	"strings"
	"testing"

	"lilt/eval"
	"lilt/lexer"
	"lilt/parser"
)

// run evaluates src as a whole program. input feeds read; the returned
// string is everything show printed.
func run(t *testing.T, src, input string) (eval.Value, error, string) {
	t.Helper()
	var out bytes.Buffer
	ctx := eval.NewContext(&out, eval.NewScannerSource(strings.NewReader(input)))
	rv, err := ctx.Evaluate(mustParse(t, src))
	return rv, err, out.String()
}

func mustParse(t *testing.T, src string) parser.Expr {
	t.Helper()
	l := lexer.New("<test>", src)
	l.ScanTokens()
	if len(l.Errors) != 0 {
		t.Fatalf("lexer errors: %v", l.Errors)
	}
	p := parser.New("<test>", l.Tokens)
	expr := p.Parse()
	if len(p.Errors) != 0 {
		t.Fatalf("parser errors: %v", p.Errors)
	}
	return expr
}

func wantValue(t *testing.T, src, input, expected string) {
	t.Helper()
	rv, err, _ := run(t, src, input)
	if err != nil {
		t.Errorf("(%q): unexpected error: %s", src, err)
		return
	}
	if got := eval.Inspect(rv); got != expected {
		t.Errorf("(%q): expected=%s, got=%s", src, expected, got)
	}
}

func wantKind(t *testing.T, src, input string, kind eval.ErrorKind) {
	t.Helper()
	_, err, _ := run(t, src, input)
	if err == nil {
		t.Errorf("(%q): expected %s, got no error", src, kind)
		return
	}
	ee, ok := err.(*eval.Error)
	if !ok {
		t.Errorf("(%q): expected *eval.Error, got %T", src, err)
		return
	}
	if ee.Kind != kind {
		t.Errorf("(%q): expected kind=%s, got=%s (%s)", src, kind, ee.Kind, ee)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"5 + 3 * 2", "11"},
		{"10 / 2 + 3", "8"},
		{"10 - 2 * 3", "4"},
		{"-(2 + 3)", "-5"},
		// floor division rounds toward negative infinity
		{"7 / 2", "3"},
		{"-7 / 2", "-4"},
		{"7 / -2", "-4"},
		{"-7 / -2", "3"},
		{"6 / 3", "2"},
		{"-6 / 3", "-2"},
	}
	for _, test := range tests {
		wantValue(t, test.src, "", test.expected)
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, src := range []string{"10 / 0", "0 / 0", "-3 / 0"} {
		wantKind(t, src, "", eval.DIVISION_BY_ZERO)
	}
}

func TestArithmeticTypeMismatch(t *testing.T) {
	for _, src := range []string{`1 + "a"`, `"a" * 2`, "true - false", "-true"} {
		wantKind(t, src, "", eval.TYPE_MISMATCH)
	}
}

func TestLet(t *testing.T) {
	wantValue(t, "let x = 10 in x + 5 end", "", "15")
	wantValue(t, "let x = 2 in let y = 3 in x * y end end", "", "6")
	// inner bindings shadow outer ones
	wantValue(t, "let x = 1 in let x = 2 in x end end", "", "2")
	// let is non-recursive: the initializer sees the outer binding
	wantValue(t, "let x = 1 in let x = x + 1 in x end end", "", "2")
	// ... and an absent outer binding is an error, not self-reference
	wantKind(t, "let x = x in x end", "", eval.UNBOUND_NAME)
}

func TestLetfun(t *testing.T) {
	wantValue(t, "letfun addOne(x) = x + 1 in addOne(41) end", "", "42")
	wantValue(t, "letfun square(x) = x * x in square(4) end", "", "16")
	// direct recursion through the self-referential frame
	wantValue(t,
		"letfun fact(n) = if n == 0 then 1 else n * fact(n - 1) in fact(5) end",
		"", "120")
	wantValue(t,
		"letfun fib(n) = if n < 2 then n else fib(n - 1) + fib(n - 2) in fib(10) end",
		"", "55")
}

func TestLexicalScoping(t *testing.T) {
	// f sees its definition-time x, not the caller's
	wantValue(t,
		"let x = 1 in letfun f(y) = x + y in let x = 100 in f(1) end end end",
		"", "2")
}

func TestCalleeBindingsDoNotLeak(t *testing.T) {
	wantKind(t, "letfun f(y) = y in f(1); y end", "", eval.UNBOUND_NAME)
}

func TestApp(t *testing.T) {
	wantValue(t, "letfun id(x) = x in id(id)(42) end", "", "42")
	wantKind(t, "5(10)", "", eval.NOT_A_FUNCTION)
	wantKind(t, `"f"(10)`, "", eval.NOT_A_FUNCTION)
	// the callee is checked before the argument is evaluated
	wantKind(t, "5(undefined)", "", eval.NOT_A_FUNCTION)
	wantKind(t, "letfun f(x) = y in f(1) end", "", eval.UNBOUND_NAME)
}

func TestUnboundName(t *testing.T) {
	wantKind(t, "undefined", "", eval.UNBOUND_NAME)
	wantKind(t, "x + 5", "", eval.UNBOUND_NAME)
}

func TestAssign(t *testing.T) {
	wantValue(t, "let x = 1 in x := 2 end", "", "2")
	wantKind(t, "x := 1", "", eval.UNDECLARED_ASSIGNMENT)
	// assignment writes the store; name reads resolve through the
	// environment, so the pre-assignment value is still visible.
	wantValue(t, "let x = 1 in (x := 2); x end", "", "1")
	// parameters are assignable too
	wantValue(t, "letfun f(x) = x := x + 1 in f(41) end", "", "42")
}

func TestSeq(t *testing.T) {
	rv, err, out := run(t, "show(1); 2", "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if eval.Inspect(rv) != "2" {
		t.Errorf("expected=2, got=%s", eval.Inspect(rv))
	}
	if out != "1\n" {
		t.Errorf("expected output %q, got=%q", "1\n", out)
	}
}

func TestBooleansAreStrict(t *testing.T) {
	// both operands of && and || are always evaluated, effects included
	tests := []struct {
		src      string
		expected string
		output   string
	}{
		{"(show(1); false) && (show(2); true)", "false", "1\n2\n"},
		{"(show(1); true) || (show(2); false)", "true", "1\n2\n"},
		{"!false && true", "true", ""},
	}
	for _, test := range tests {
		rv, err, out := run(t, test.src, "")
		if err != nil {
			t.Errorf("(%q): unexpected error: %s", test.src, err)
			continue
		}
		if got := eval.Inspect(rv); got != test.expected {
			t.Errorf("(%q): expected=%s, got=%s", test.src, test.expected, got)
		}
		if out != test.output {
			t.Errorf("(%q): expected output %q, got=%q", test.src, test.output, out)
		}
	}
	wantKind(t, "1 && true", "", eval.TYPE_MISMATCH)
	wantKind(t, "false || 0", "", eval.TYPE_MISMATCH)
	wantKind(t, "!1", "", eval.TYPE_MISMATCH)
}

func TestEvaluationOrder(t *testing.T) {
	_, err, out := run(t, "(show(1); 1) + (show(2); 2) * (show(3); 3)", "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if out != "1\n2\n3\n" {
		t.Errorf("expected output %q, got=%q", "1\n2\n3\n", out)
	}
}

func TestEq(t *testing.T) {
	wantValue(t, "1 == 1", "", "true")
	wantValue(t, "1 == 2", "", "false")
	wantValue(t, `"a" == "a"`, "", "true")
	wantValue(t, "true == false", "", "false")
	wantValue(t, "letfun f(x) = x in f == f end", "", "true")
	wantKind(t, `1 == "1"`, "", eval.TYPE_MISMATCH)
	wantKind(t, "true == 1", "", eval.TYPE_MISMATCH)
}

func TestChainedComparison(t *testing.T) {
	wantKind(t, "1 == 1 == true", "", eval.CHAINED_COMPARISON)
	// grouping does not hide the shape: the left child is still a
	// comparison node
	wantKind(t, "(1 < 2) == true", "", eval.CHAINED_COMPARISON)
	// only the left operand is restricted
	wantValue(t, "true == (1 < 2)", "", "true")
	// rejected before either side runs: no output is produced
	_, err, out := run(t, "(show(1) == show(2)) == true", "")
	if err == nil {
		t.Fatal("expected an error")
	}
	if out != "" {
		t.Errorf("expected no output, got=%q", out)
	}
}

func TestLt(t *testing.T) {
	wantValue(t, "1 < 2", "", "true")
	wantValue(t, "2 < 1", "", "false")
	wantValue(t, `"a" < "b"`, "", "true")
	wantValue(t, `"b" < "a"`, "", "false")
	wantKind(t, "true < false", "", eval.TYPE_MISMATCH)
	wantKind(t, `1 < "a"`, "", eval.TYPE_MISMATCH)
}

func TestIf(t *testing.T) {
	wantValue(t, "if true then 5 else 10", "", "5")
	wantValue(t, "if false then 5 else 10", "", "10")
	wantKind(t, "if 1 then 2 else 3", "", eval.TYPE_MISMATCH)
	// exactly one branch is evaluated
	_, err, out := run(t, "if true then 1 else show(2)", "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if out != "" {
		t.Errorf("expected no output, got=%q", out)
	}
}

func TestStrings(t *testing.T) {
	wantValue(t, `"hello" ++ " world"`, "", `"hello world"`)
	wantValue(t, `replace("hello world", "world", "Go")`, "", `"hello Go"`)
	wantValue(t, `replace("aaa", "aa", "b")`, "", `"ba"`)
	wantValue(t, `reverse("abc")`, "", `"cba"`)
	wantValue(t, `reverse("")`, "", `""`)
	wantValue(t, `length("abc")`, "", "3")
	wantValue(t, `length("")`, "", "0")
	// length and reverse work on characters, not bytes
	wantValue(t, `length("héllo")`, "", "5")
	wantValue(t, `reverse("héllo")`, "", `"olléh"`)
	wantKind(t, `1 ++ "a"`, "", eval.TYPE_MISMATCH)
	wantKind(t, "length(1)", "", eval.TYPE_MISMATCH)
	wantKind(t, "reverse(true)", "", eval.TYPE_MISMATCH)
	wantKind(t, `replace("a", 1, "b")`, "", eval.TYPE_MISMATCH)
}

func TestShow(t *testing.T) {
	// show returns its operand unchanged
	rv, err, out := run(t, "show(41) + 1", "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if eval.Inspect(rv) != "42" {
		t.Errorf("expected=42, got=%s", eval.Inspect(rv))
	}
	if out != "41\n" {
		t.Errorf("expected output %q, got=%q", "41\n", out)
	}
	// strings are shown raw, booleans lowercase
	_, _, out = run(t, `show("hi"); show(true)`, "")
	if out != "hi\ntrue\n" {
		t.Errorf("expected output %q, got=%q", "hi\ntrue\n", out)
	}
}

func TestRead(t *testing.T) {
	wantValue(t, "read + read", "1\n2\n", "3")
	wantValue(t, "read", "  42  \n", "42")
	wantKind(t, "read", "abc\n", eval.INVALID_INPUT)
	wantKind(t, "read", "", eval.INVALID_INPUT)
	wantKind(t, "read + read", "1\n", eval.INVALID_INPUT)
}

func TestIdempotence(t *testing.T) {
	expr := mustParse(t, "1 + 2 * 3")
	for i := 0; i < 2; i++ {
		ctx := eval.NewContext(nil, eval.NewScannerSource(strings.NewReader("")))
		rv, err := ctx.Evaluate(expr)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if rv != eval.Int(7) {
			t.Errorf("run %d: expected=7, got=%s", i, eval.Inspect(rv))
		}
	}
}

func TestErrorStringsExposeKind(t *testing.T) {
	_, err, _ := run(t, "1 / 0", "")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.HasPrefix(err.Error(), "DIVISION_BY_ZERO: ") {
		t.Errorf("unexpected error string: %q", err.Error())
	}
}
