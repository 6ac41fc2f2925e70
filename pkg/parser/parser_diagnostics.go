package parser

import (
	"fmt"

	"slate/interpreter-go/pkg/lexer"
)

// SourceLocation captures the source position a diagnostic points at.
type SourceLocation struct {
	Line   int
	Column int
}

// SyntaxError is a parse diagnostic with a best-effort source location.
type SyntaxError struct {
	Message  string
	Location SourceLocation
}

// Error renders the diagnostic in the driver's reporting format.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Location.Line, e.Message)
}

func errorAt(token lexer.Token, message string) *SyntaxError {
	return &SyntaxError{
		Message:  message,
		Location: SourceLocation{Line: token.Line, Column: token.Column},
	}
}
