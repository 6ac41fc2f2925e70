package interpreter

import "fmt"

// ErrorKind classifies a runtime failure.
type ErrorKind int

const (
	TypeMismatch ErrorKind = iota
	DivisionByZero
	UndefinedVariable
)

func (k ErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case DivisionByZero:
		return "DivisionByZero"
	case UndefinedVariable:
		return "UndefinedVariable"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// RuntimeError aborts evaluation at the point of failure. Exactly one is
// reported per run; the statements after the failing one do not execute.
type RuntimeError struct {
	Kind    ErrorKind
	Line    int
	Message string
}

// Error renders the diagnostic in the driver's reporting format.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Runtime Error: %s", e.Line, e.Message)
}

func runtimeErrorf(kind ErrorKind, line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}
