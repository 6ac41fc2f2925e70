// Package ast defines the Slate syntax tree produced by the parser. Nodes are
// built bottom-up during parsing and never mutated afterwards; every node is
// owned by its parent and the tree is acyclic.
package ast

import "slate/interpreter-go/pkg/lexer"

// NodeType identifies the concrete kind of a syntax tree node.
type NodeType string

const (
	NodeNumberLiteral        NodeType = "NumberLiteral"
	NodeStringLiteral        NodeType = "StringLiteral"
	NodeBooleanLiteral       NodeType = "BooleanLiteral"
	NodeNilLiteral           NodeType = "NilLiteral"
	NodeGroupingExpression   NodeType = "GroupingExpression"
	NodeUnaryExpression      NodeType = "UnaryExpression"
	NodeBinaryExpression     NodeType = "BinaryExpression"
	NodeLogicalExpression    NodeType = "LogicalExpression"
	NodeIdentifier           NodeType = "Identifier"
	NodeAssignmentExpression NodeType = "AssignmentExpression"
	NodeExpressionStatement  NodeType = "ExpressionStatement"
	NodePrintStatement       NodeType = "PrintStatement"
	NodeVariableDeclaration  NodeType = "VariableDeclaration"
	NodeBlockStatement       NodeType = "BlockStatement"
	NodeIfStatement          NodeType = "IfStatement"
	NodeWhileStatement       NodeType = "WhileStatement"
)

// Node is the shared behaviour of every syntax tree node.
type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl { return nodeImpl{Type: kind} }

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Expression is the marker for nodes that evaluate to a value.
type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Statement is the marker for nodes executed for their effect.
type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Program is an ordered sequence of top-level statements.
type Program struct {
	Statements []Statement `json:"statements"`
}

// Expressions.

type NumberLiteral struct {
	nodeImpl
	expressionMarker
	Value float64 `json:"value"`
}

type StringLiteral struct {
	nodeImpl
	expressionMarker
	Value string `json:"value"`
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	Value bool `json:"value"`
}

type NilLiteral struct {
	nodeImpl
	expressionMarker
}

type GroupingExpression struct {
	nodeImpl
	expressionMarker
	Expression Expression `json:"expression"`
}

// UnaryExpression applies a prefix operator (Minus or Bang) to its operand.
type UnaryExpression struct {
	nodeImpl
	expressionMarker
	Operator lexer.Token `json:"operator"`
	Operand  Expression  `json:"operand"`
}

// BinaryExpression is a left-associative arithmetic, comparison, or equality
// operation.
type BinaryExpression struct {
	nodeImpl
	expressionMarker
	Left     Expression  `json:"left"`
	Operator lexer.Token `json:"operator"`
	Right    Expression  `json:"right"`
}

// LogicalExpression is a short-circuiting `and` or `or`.
type LogicalExpression struct {
	nodeImpl
	expressionMarker
	Left     Expression  `json:"left"`
	Operator lexer.Token `json:"operator"`
	Right    Expression  `json:"right"`
}

// Identifier is a variable reference. Name keeps the original token so
// runtime diagnostics can point back at the source line.
type Identifier struct {
	nodeImpl
	expressionMarker
	Name lexer.Token `json:"name"`
}

// AssignmentExpression writes to an existing variable and yields the assigned
// value, so assignments compose as subexpressions.
type AssignmentExpression struct {
	nodeImpl
	expressionMarker
	Name  lexer.Token `json:"name"`
	Value Expression  `json:"value"`
}

// Statements.

type ExpressionStatement struct {
	nodeImpl
	statementMarker
	Expression Expression `json:"expression"`
}

type PrintStatement struct {
	nodeImpl
	statementMarker
	Expression Expression `json:"expression"`
}

// VariableDeclaration introduces a binding in the current scope. A nil
// Initializer defaults the variable to nil at execution time.
type VariableDeclaration struct {
	nodeImpl
	statementMarker
	Name        lexer.Token `json:"name"`
	Initializer Expression  `json:"initializer,omitempty"`
}

type BlockStatement struct {
	nodeImpl
	statementMarker
	Statements []Statement `json:"statements"`
}

// IfStatement executes exactly one branch; Else may be nil.
type IfStatement struct {
	nodeImpl
	statementMarker
	Condition Expression `json:"condition"`
	Then      Statement  `json:"then"`
	Else      Statement  `json:"else,omitempty"`
}

type WhileStatement struct {
	nodeImpl
	statementMarker
	Condition Expression `json:"condition"`
	Body      Statement  `json:"body"`
}

// Constructors. The parser always builds nodes through these so the NodeType
// discriminator is never left unset.

func NewNumberLiteral(value float64) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

func NewNilLiteral() *NilLiteral {
	return &NilLiteral{nodeImpl: newNodeImpl(NodeNilLiteral)}
}

func NewGrouping(inner Expression) *GroupingExpression {
	return &GroupingExpression{nodeImpl: newNodeImpl(NodeGroupingExpression), Expression: inner}
}

func NewUnary(operator lexer.Token, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

func NewBinary(left Expression, operator lexer.Token, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Left: left, Operator: operator, Right: right}
}

func NewLogical(left Expression, operator lexer.Token, right Expression) *LogicalExpression {
	return &LogicalExpression{nodeImpl: newNodeImpl(NodeLogicalExpression), Left: left, Operator: operator, Right: right}
}

func NewIdentifier(name lexer.Token) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

func NewAssignment(name lexer.Token, value Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignmentExpression), Name: name, Value: value}
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

func NewPrintStatement(expr Expression) *PrintStatement {
	return &PrintStatement{nodeImpl: newNodeImpl(NodePrintStatement), Expression: expr}
}

func NewVariableDeclaration(name lexer.Token, initializer Expression) *VariableDeclaration {
	return &VariableDeclaration{nodeImpl: newNodeImpl(NodeVariableDeclaration), Name: name, Initializer: initializer}
}

func NewBlock(statements []Statement) *BlockStatement {
	return &BlockStatement{nodeImpl: newNodeImpl(NodeBlockStatement), Statements: statements}
}

func NewIf(condition Expression, then, elseBranch Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Then: then, Else: elseBranch}
}

func NewWhile(condition Expression, body Statement) *WhileStatement {
	return &WhileStatement{nodeImpl: newNodeImpl(NodeWhileStatement), Condition: condition, Body: body}
}
