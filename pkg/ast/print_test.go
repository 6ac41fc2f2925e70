package ast

import (
	"testing"

	"slate/interpreter-go/pkg/lexer"
)

func token(kind lexer.Kind, lexeme string) lexer.Token {
	return lexer.Token{Kind: kind, Lexeme: lexeme, Line: 1, Column: 1}
}

func TestSExpr(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "integral number drops the fraction",
			node: NewNumberLiteral(3),
			want: "3",
		},
		{
			name: "fractional number",
			node: NewNumberLiteral(2.5),
			want: "2.5",
		},
		{
			name: "string keeps its quotes",
			node: NewStringLiteral("hi"),
			want: `"hi"`,
		},
		{
			name: "binary",
			node: NewBinary(NewNumberLiteral(1), token(lexer.Plus, "+"), NewNumberLiteral(2)),
			want: "(+ 1 2)",
		},
		{
			name: "grouping",
			node: NewGrouping(NewNilLiteral()),
			want: "(group nil)",
		},
		{
			name: "unary",
			node: NewUnary(token(lexer.Bang, "!"), NewBooleanLiteral(true)),
			want: "(! true)",
		},
		{
			name: "assignment",
			node: NewAssignment(token(lexer.Identifier, "x"), NewNumberLiteral(1)),
			want: "(= x 1)",
		},
		{
			name: "variable declaration without initializer",
			node: NewVariableDeclaration(token(lexer.Identifier, "x"), nil),
			want: "(var x)",
		},
		{
			name: "if without else",
			node: NewIf(NewBooleanLiteral(true), NewPrintStatement(NewNumberLiteral(1)), nil),
			want: "(if true (print 1))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SExpr(tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
