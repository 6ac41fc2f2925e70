package driver

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunCleanProgram(t *testing.T) {
	var out bytes.Buffer
	result := Run([]byte(`print 1 + 2; print "done";`), &out)
	if !result.Ok() {
		t.Fatalf("diagnostics: %v", result.Diagnostics)
	}
	if got, want := out.String(), "3\ndone\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSyntaxErrorsSuppressExecution(t *testing.T) {
	var out bytes.Buffer
	result := Run([]byte("print 1;\nprint ;"), &out)
	if !result.HadSyntaxError {
		t.Fatal("expected a syntax error")
	}
	if result.HadRuntimeError {
		t.Fatal("a syntax error must not be reported as a runtime error")
	}
	if out.Len() != 0 {
		t.Fatalf("no statement may run when the program fails to parse: got %q", out.String())
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(result.Diagnostics), result.Diagnostics)
	}
	if got, want := result.Diagnostics[0], "[line 2] Error: expected expression"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAllSyntaxErrorsReportedTogether(t *testing.T) {
	// One lexer error and one parser error in the same source; both must
	// surface from a single run, lexer diagnostics first.
	var out bytes.Buffer
	result := Run([]byte("var a = @1;\nprint ;"), &out)
	if len(result.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(result.Diagnostics), result.Diagnostics)
	}
	if !strings.Contains(result.Diagnostics[0], "[line 1]") {
		t.Fatalf("first diagnostic should point at line 1: %q", result.Diagnostics[0])
	}
	if !strings.Contains(result.Diagnostics[1], "[line 2]") {
		t.Fatalf("second diagnostic should point at line 2: %q", result.Diagnostics[1])
	}
}

func TestRuntimeErrorAfterPartialOutput(t *testing.T) {
	var out bytes.Buffer
	result := Run([]byte("print 1; print 2 / 0; print 3;"), &out)
	if !result.HadRuntimeError {
		t.Fatal("expected a runtime error")
	}
	if result.HadSyntaxError {
		t.Fatal("a runtime error must not be reported as a syntax error")
	}
	if got, want := out.String(), "1\n"; got != want {
		t.Fatalf("output before the failure must be preserved: got %q, want %q", got, want)
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want exactly 1: %v", len(result.Diagnostics), result.Diagnostics)
	}
	if got, want := result.Diagnostics[0], "[line 1] Runtime Error: division by zero"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSessionKeepsStateAcrossRuns(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(&out)

	if result := session.Run([]byte("var answer = 42;")); !result.Ok() {
		t.Fatalf("diagnostics: %v", result.Diagnostics)
	}
	if result := session.Run([]byte("print answer;")); !result.Ok() {
		t.Fatalf("diagnostics: %v", result.Diagnostics)
	}
	if got, want := out.String(), "42\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSessionSurvivesFailedRuns(t *testing.T) {
	var out bytes.Buffer
	session := NewSession(&out)

	session.Run([]byte("var x = 1;"))
	if result := session.Run([]byte("print ;")); !result.HadSyntaxError {
		t.Fatal("expected a syntax error")
	}
	if result := session.Run([]byte("print missing;")); !result.HadRuntimeError {
		t.Fatal("expected a runtime error")
	}
	if result := session.Run([]byte("print x;")); !result.Ok() {
		t.Fatalf("diagnostics: %v", result.Diagnostics)
	}
	if got, want := out.String(), "1\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmptySource(t *testing.T) {
	var out bytes.Buffer
	result := Run(nil, &out)
	if !result.Ok() {
		t.Fatalf("diagnostics: %v", result.Diagnostics)
	}
	if out.Len() != 0 {
		t.Fatalf("got %q", out.String())
	}
}
