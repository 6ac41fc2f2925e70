package parser

import (
	"strings"
	"testing"

	"slate/interpreter-go/pkg/ast"
	"slate/interpreter-go/pkg/lexer"
)

func parseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	tokens, lexErrs := lexer.New([]byte(source)).Scan()
	if len(lexErrs) != 0 {
		t.Fatalf("lex errors for %q: %v", source, lexErrs)
	}
	program, parseErrs := New(tokens).Parse()
	if len(parseErrs) != 0 {
		t.Fatalf("parse errors for %q: %v", source, parseErrs)
	}
	return program
}

func parseErrors(t *testing.T, source string) []*SyntaxError {
	t.Helper()
	tokens, lexErrs := lexer.New([]byte(source)).Scan()
	if len(lexErrs) != 0 {
		t.Fatalf("lex errors for %q: %v", source, lexErrs)
	}
	_, parseErrs := New(tokens).Parse()
	return parseErrs
}

func firstSExpr(t *testing.T, source string) string {
	t.Helper()
	program := parseProgram(t, source)
	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements for %q, want 1", len(program.Statements), source)
	}
	return ast.SExpr(program.Statements[0])
}

func TestParseExpressionShapes(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3;", "(expr (+ 1 (* 2 3)))"},
		{"(1 + 2) * 3;", "(expr (* (group (+ 1 2)) 3))"},
		{"1 - 2 - 3;", "(expr (- (- 1 2) 3))"},
		{"12 / 4 / 3;", "(expr (/ (/ 12 4) 3))"},
		{"1 < 2 == true;", "(expr (== (< 1 2) true))"},
		{"-x * 3;", "(expr (* (- x) 3))"},
		{"!!ready;", "(expr (! (! ready)))"},
		{"a or b and c;", "(expr (or a (and b c)))"},
		{"a and b or c;", "(expr (or (and a b) c))"},
		{"a = b = 1;", "(expr (= a (= b 1)))"},
		{"x = 1 or 2;", "(expr (= x (or 1 2)))"},
		{`print "hi" + name;`, `(print (+ "hi" name))`},
		{"nil == nil;", "(expr (== nil nil))"},
	}
	for _, tt := range tests {
		if got := firstSExpr(t, tt.source); got != tt.want {
			t.Errorf("%q: got %s, want %s", tt.source, got, tt.want)
		}
	}
}

func TestParseVariableDeclarations(t *testing.T) {
	if got := firstSExpr(t, "var x;"); got != "(var x)" {
		t.Fatalf("got %s", got)
	}
	if got := firstSExpr(t, "var x = 1 + 2;"); got != "(var x (+ 1 2))" {
		t.Fatalf("got %s", got)
	}
}

func TestParseBlocksNest(t *testing.T) {
	got := firstSExpr(t, "{ var x = 1; { print x; } }")
	want := "(block (var x 1) (block (print x)))"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseDanglingElseBindsToNearestIf(t *testing.T) {
	got := firstSExpr(t, `if (true) if (false) print "a"; else print "b";`)
	want := `(if true (if false (print "a") (print "b")))`
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseWhile(t *testing.T) {
	got := firstSExpr(t, "while (i < 3) print i;")
	want := "(while (< i 3) (print i))"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	got := firstSExpr(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	want := "(block (var i 0) (while (< i 3) (block (print i) (expr (= i (+ i 1))))))"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseForOmittedClauses(t *testing.T) {
	got := firstSExpr(t, "for (;;) print 1;")
	want := "(block (while true (print 1)))"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	got = firstSExpr(t, "for (; i < 3;) print i;")
	want = "(block (while (< i 3) (print i)))"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	got = firstSExpr(t, "for (i = 0; i < 3;) print i;")
	want = "(block (expr (= i 0)) (while (< i 3) (print i)))"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseLoopBodyRestriction(t *testing.T) {
	sources := []string{
		"while (true) var x = 1;",
		"while (true) if (x) print x;",
		"while (true) while (false) print 1;",
		"for (;;) var x = 1;",
		"for (;;) for (;;) print 1;",
	}
	for _, source := range sources {
		errs := parseErrors(t, source)
		if len(errs) == 0 {
			t.Errorf("%q: expected a syntax error", source)
			continue
		}
		if !strings.Contains(errs[0].Message, "loop body") {
			t.Errorf("%q: got %q, want loop body restriction", source, errs[0].Message)
		}
	}

	// The permitted body kinds parse cleanly.
	parseProgram(t, "while (true) { var x = 1; }")
	parseProgram(t, "while (true) print 1;")
	parseProgram(t, "while (true) x = x + 1;")
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	errs := parseErrors(t, "1 + 2 = 3;")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Message != "invalid assignment target" {
		t.Fatalf("got %q", errs[0].Message)
	}
}

func TestParseUnmatchedParen(t *testing.T) {
	errs := parseErrors(t, "(1 + 2;")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Message, "expected ')'") {
		t.Fatalf("got %q", errs[0].Message)
	}
}

func TestParseRecoversAtStatementBoundaries(t *testing.T) {
	source := "var = 1;\nprint 2;\nprint ;\nvar ok = 3;"
	tokens, lexErrs := lexer.New([]byte(source)).Scan()
	if len(lexErrs) != 0 {
		t.Fatalf("lex errors: %v", lexErrs)
	}
	program, errs := New(tokens).Parse()
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	if errs[0].Location.Line != 1 || errs[1].Location.Line != 3 {
		t.Fatalf("error lines %d and %d, want 1 and 3", errs[0].Location.Line, errs[1].Location.Line)
	}
	// The healthy statements still parsed.
	if len(program.Statements) != 2 {
		t.Fatalf("got %d recovered statements, want 2", len(program.Statements))
	}
}

func TestParseErrorFormatting(t *testing.T) {
	errs := parseErrors(t, "print ;")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if got, want := errs[0].Error(), "[line 1] Error: expected expression"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
