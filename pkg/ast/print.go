package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// SExpr renders an expression as a parenthesised prefix form, e.g.
// (+ 1 (group 2)). Statements render with a keyword head. The output is a
// debugging aid and a convenient shape assertion for parser tests.
func SExpr(node Node) string {
	switch n := node.(type) {
	case *NumberLiteral:
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	case *StringLiteral:
		return fmt.Sprintf("%q", n.Value)
	case *BooleanLiteral:
		return strconv.FormatBool(n.Value)
	case *NilLiteral:
		return "nil"
	case *GroupingExpression:
		return "(group " + SExpr(n.Expression) + ")"
	case *UnaryExpression:
		return "(" + n.Operator.Lexeme + " " + SExpr(n.Operand) + ")"
	case *BinaryExpression:
		return "(" + n.Operator.Lexeme + " " + SExpr(n.Left) + " " + SExpr(n.Right) + ")"
	case *LogicalExpression:
		return "(" + n.Operator.Lexeme + " " + SExpr(n.Left) + " " + SExpr(n.Right) + ")"
	case *Identifier:
		return n.Name.Lexeme
	case *AssignmentExpression:
		return "(= " + n.Name.Lexeme + " " + SExpr(n.Value) + ")"
	case *ExpressionStatement:
		return "(expr " + SExpr(n.Expression) + ")"
	case *PrintStatement:
		return "(print " + SExpr(n.Expression) + ")"
	case *VariableDeclaration:
		if n.Initializer == nil {
			return "(var " + n.Name.Lexeme + ")"
		}
		return "(var " + n.Name.Lexeme + " " + SExpr(n.Initializer) + ")"
	case *BlockStatement:
		parts := make([]string, 0, len(n.Statements)+1)
		parts = append(parts, "block")
		for _, stmt := range n.Statements {
			parts = append(parts, SExpr(stmt))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *IfStatement:
		if n.Else == nil {
			return "(if " + SExpr(n.Condition) + " " + SExpr(n.Then) + ")"
		}
		return "(if " + SExpr(n.Condition) + " " + SExpr(n.Then) + " " + SExpr(n.Else) + ")"
	case *WhileStatement:
		return "(while " + SExpr(n.Condition) + " " + SExpr(n.Body) + ")"
	default:
		return fmt.Sprintf("(unknown %T)", node)
	}
}
