// Package interpreter executes Slate programs by walking the syntax tree
// against a chain of lexical environments. Execution is a single synchronous
// pass: statements run in order, and the first runtime error aborts the rest
// of the run.
package interpreter

import (
	"fmt"
	"io"

	"slate/interpreter-go/pkg/ast"
	"slate/interpreter-go/pkg/lexer"
	"slate/interpreter-go/pkg/runtime"
)

// Interpreter walks a Slate syntax tree. The zero value is not usable;
// construct one with New. A single interpreter may execute several programs
// in sequence (the REPL does), sharing its global scope across runs.
type Interpreter struct {
	globals *runtime.Environment
	out     io.Writer
}

// New creates an interpreter whose print statements write to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{
		globals: runtime.NewEnvironment(nil),
		out:     out,
	}
}

// Globals exposes the interpreter's root environment.
func (i *Interpreter) Globals() *runtime.Environment {
	return i.globals
}

// Run executes the program's statements in order against the global scope.
// The returned error, if any, is a *RuntimeError; it is a result for the
// caller to report, not a crash.
func (i *Interpreter) Run(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if err := i.executeStatement(stmt, i.globals); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeStatement(stmt ast.Statement, env *runtime.Environment) error {
	switch n := stmt.(type) {
	case *ast.ExpressionStatement:
		_, err := i.evaluateExpression(n.Expression, env)
		return err
	case *ast.PrintStatement:
		value, err := i.evaluateExpression(n.Expression, env)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(i.out, value.Display())
		return err
	case *ast.VariableDeclaration:
		var value runtime.Value = runtime.NilValue{}
		if n.Initializer != nil {
			evaluated, err := i.evaluateExpression(n.Initializer, env)
			if err != nil {
				return err
			}
			value = evaluated
		}
		env.Define(n.Name.Lexeme, value)
		return nil
	case *ast.BlockStatement:
		// The child environment lives exactly as long as this call; it is
		// unreachable again whether the block completes or fails partway,
		// so no bindings leak into the enclosing scope.
		return i.executeBlock(n.Statements, env.Extend())
	case *ast.IfStatement:
		condition, err := i.evaluateExpression(n.Condition, env)
		if err != nil {
			return err
		}
		if runtime.Truthy(condition) {
			return i.executeStatement(n.Then, env)
		}
		if n.Else != nil {
			return i.executeStatement(n.Else, env)
		}
		return nil
	case *ast.WhileStatement:
		for {
			condition, err := i.evaluateExpression(n.Condition, env)
			if err != nil {
				return err
			}
			if !runtime.Truthy(condition) {
				return nil
			}
			// A block body extends env freshly on every iteration, so
			// variables declared inside do not persist across iterations.
			if err := i.executeStatement(n.Body, env); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("interpreter: unhandled statement %T", stmt)
	}
}

func (i *Interpreter) executeBlock(statements []ast.Statement, env *runtime.Environment) error {
	for _, stmt := range statements {
		if err := i.executeStatement(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) evaluateExpression(expr ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NilLiteral:
		return runtime.NilValue{}, nil
	case *ast.GroupingExpression:
		return i.evaluateExpression(n.Expression, env)
	case *ast.UnaryExpression:
		return i.evaluateUnary(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinary(n, env)
	case *ast.LogicalExpression:
		return i.evaluateLogical(n, env)
	case *ast.Identifier:
		value, err := env.Get(n.Name.Lexeme)
		if err != nil {
			return nil, runtimeErrorf(UndefinedVariable, n.Name.Line, "%s", err)
		}
		return value, nil
	case *ast.AssignmentExpression:
		value, err := i.evaluateExpression(n.Value, env)
		if err != nil {
			return nil, err
		}
		if err := env.Assign(n.Name.Lexeme, value); err != nil {
			return nil, runtimeErrorf(UndefinedVariable, n.Name.Line, "%s", err)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("interpreter: unhandled expression %T", expr)
	}
}

func (i *Interpreter) evaluateUnary(n *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(n.Operand, env)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Kind {
	case lexer.Minus:
		number, ok := operand.(runtime.NumberValue)
		if !ok {
			return nil, runtimeErrorf(TypeMismatch, n.Operator.Line, "operand must be a number, got %s", operand.Kind())
		}
		return runtime.NumberValue{Val: -number.Val}, nil
	default: // Bang
		return runtime.BoolValue{Val: !runtime.Truthy(operand)}, nil
	}
}

func (i *Interpreter) evaluateBinary(n *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(n.Right, env)
	if err != nil {
		return nil, err
	}

	op := n.Operator
	switch op.Kind {
	case lexer.Plus:
		if l, ok := left.(runtime.NumberValue); ok {
			if r, ok := right.(runtime.NumberValue); ok {
				return runtime.NumberValue{Val: l.Val + r.Val}, nil
			}
		}
		if l, ok := left.(runtime.StringValue); ok {
			if r, ok := right.(runtime.StringValue); ok {
				return runtime.StringValue{Val: l.Val + r.Val}, nil
			}
		}
		return nil, runtimeErrorf(TypeMismatch, op.Line, "operands for '+' must be two numbers or two strings, got %s and %s", left.Kind(), right.Kind())
	case lexer.Minus:
		l, r, err := i.numberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.NumberValue{Val: l - r}, nil
	case lexer.Star:
		l, r, err := i.numberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.NumberValue{Val: l * r}, nil
	case lexer.Slash:
		l, r, err := i.numberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, runtimeErrorf(DivisionByZero, op.Line, "division by zero")
		}
		return runtime.NumberValue{Val: l / r}, nil
	case lexer.Greater:
		l, r, err := i.numberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: l > r}, nil
	case lexer.GreaterEqual:
		l, r, err := i.numberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: l >= r}, nil
	case lexer.Less:
		l, r, err := i.numberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: l < r}, nil
	case lexer.LessEqual:
		l, r, err := i.numberOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: l <= r}, nil
	case lexer.EqualEqual:
		return runtime.BoolValue{Val: runtime.Equals(left, right)}, nil
	case lexer.BangEqual:
		return runtime.BoolValue{Val: !runtime.Equals(left, right)}, nil
	default:
		return nil, fmt.Errorf("interpreter: unhandled binary operator %s", op.Kind)
	}
}

// evaluateLogical short-circuits and yields whichever operand decided the
// outcome, not a coerced boolean.
func (i *Interpreter) evaluateLogical(n *ast.LogicalExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(n.Left, env)
	if err != nil {
		return nil, err
	}
	if n.Operator.Kind == lexer.Or {
		if runtime.Truthy(left) {
			return left, nil
		}
	} else {
		if !runtime.Truthy(left) {
			return left, nil
		}
	}
	return i.evaluateExpression(n.Right, env)
}

func (i *Interpreter) numberOperands(op lexer.Token, left, right runtime.Value) (float64, float64, error) {
	l, lok := left.(runtime.NumberValue)
	r, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return 0, 0, runtimeErrorf(TypeMismatch, op.Line, "operands for '%s' must be numbers, got %s and %s", op.Lexeme, left.Kind(), right.Kind())
	}
	return l.Val, r.Val, nil
}
