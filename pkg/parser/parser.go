// Package parser builds the Slate syntax tree from the lexer's token
// sequence. It is a hand-written recursive-descent parser: one method per
// grammar rule, with each binary precedence level looping to build
// left-leaning nodes. On a syntax error the parser discards tokens up to the
// next statement boundary and resumes, so a single pass reports every
// independent error in the source.
package parser

import (
	"slate/interpreter-go/pkg/ast"
	"slate/interpreter-go/pkg/lexer"
)

// Parser consumes a token sequence produced by the lexer. The sequence must
// end with an EOF token.
type Parser struct {
	tokens  []lexer.Token
	current int
	errs    []*SyntaxError
}

// New creates a parser over the given tokens.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token sequence and returns the program plus every
// syntax error found. Statements that parsed cleanly are returned even when
// other statements failed; callers must not execute the program if any errors
// were reported.
func (p *Parser) Parse() (*ast.Program, []*SyntaxError) {
	program := &ast.Program{}
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.record(err)
			p.synchronize()
			continue
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, p.errs
}

func (p *Parser) declaration() (ast.Statement, error) {
	if p.match(lexer.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (ast.Statement, error) {
	name, err := p.consume(lexer.Identifier, "expected variable name")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if p.match(lexer.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.Semicolon, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return ast.NewVariableDeclaration(name, initializer), nil
}

func (p *Parser) statement() (ast.Statement, error) {
	switch p.peek().Kind {
	case lexer.Print:
		return p.printStatement()
	case lexer.LeftBrace:
		return p.block()
	case lexer.If:
		return p.ifStatement()
	case lexer.While:
		return p.whileStatement()
	case lexer.For:
		return p.forStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (ast.Statement, error) {
	p.advance() // print
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Semicolon, "expected ';' after value"); err != nil {
		return nil, err
	}
	return ast.NewPrintStatement(expr), nil
}

func (p *Parser) expressionStatement() (ast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Semicolon, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(expr), nil
}

func (p *Parser) block() (ast.Statement, error) {
	if _, err := p.consume(lexer.LeftBrace, "expected '{' at start of block"); err != nil {
		return nil, err
	}
	var statements []ast.Statement
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.record(err)
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(lexer.RightBrace, "expected '}' at end of block"); err != nil {
		return nil, err
	}
	return ast.NewBlock(statements), nil
}

func (p *Parser) ifStatement() (ast.Statement, error) {
	p.advance() // if
	if _, err := p.consume(lexer.LeftParen, "expected '(' after 'if'"); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RightParen, "expected ')' after condition"); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	// An `else` binds to the nearest preceding unmatched `if`, which falls
	// out of consuming it eagerly here.
	var elseBranch ast.Statement
	if p.match(lexer.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIf(condition, then, elseBranch), nil
}

func (p *Parser) whileStatement() (ast.Statement, error) {
	p.advance() // while
	if _, err := p.consume(lexer.LeftParen, "expected '(' after 'while'"); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RightParen, "expected ')' after condition"); err != nil {
		return nil, err
	}
	body, err := p.loopBody()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(condition, body), nil
}

// forStatement parses a C-style for loop and desugars it: the loop becomes a
// block holding the optional initializer and a while statement, with the
// increment appended after the body inside its own block. There is no For
// node in the tree.
func (p *Parser) forStatement() (ast.Statement, error) {
	p.advance() // for
	if _, err := p.consume(lexer.LeftParen, "expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var initializer ast.Statement
	var err error
	switch {
	case p.match(lexer.Semicolon):
		// No initializer.
	case p.match(lexer.Var):
		initializer, err = p.varDeclaration()
		if err != nil {
			return nil, err
		}
	default:
		initializer, err = p.expressionStatement()
		if err != nil {
			return nil, err
		}
	}

	var condition ast.Expression
	if !p.check(lexer.Semicolon) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.Semicolon, "expected ';' after loop condition"); err != nil {
		return nil, err
	}

	var increment ast.Expression
	if !p.check(lexer.RightParen) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.RightParen, "expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.loopBody()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = ast.NewBlock([]ast.Statement{body, ast.NewExpressionStatement(increment)})
	}
	if condition == nil {
		condition = ast.NewBooleanLiteral(true)
	}
	loop := ast.NewWhile(condition, body)
	if initializer == nil {
		return ast.NewBlock([]ast.Statement{loop}), nil
	}
	return ast.NewBlock([]ast.Statement{initializer, loop}), nil
}

// loopBody enforces the grammar restriction on while/for bodies: only a
// block, a print statement, or an expression statement may appear as the
// direct body of a loop.
func (p *Parser) loopBody() (ast.Statement, error) {
	switch p.peek().Kind {
	case lexer.LeftBrace:
		return p.block()
	case lexer.Print:
		return p.printStatement()
	case lexer.If, lexer.While, lexer.For, lexer.Var, lexer.Else:
		return nil, errorAt(p.peek(), "loop body must be a block, print, or expression statement")
	default:
		return p.expressionStatement()
	}
}

// Expression grammar, lowest to highest precedence.

func (p *Parser) expression() (ast.Expression, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expression, error) {
	expr, err := p.logicalOr()
	if err != nil {
		return nil, err
	}
	if p.match(lexer.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if target, ok := expr.(*ast.Identifier); ok {
			return ast.NewAssignment(target.Name, value), nil
		}
		return nil, errorAt(equals, "invalid assignment target")
	}
	return expr, nil
}

func (p *Parser) logicalOr() (ast.Expression, error) {
	expr, err := p.logicalAnd()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.Or) {
		operator := p.previous()
		right, err := p.logicalAnd()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr, nil
}

func (p *Parser) logicalAnd() (ast.Expression, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.And) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expression, error) {
	return p.binaryLevel(p.comparison, lexer.BangEqual, lexer.EqualEqual)
}

func (p *Parser) comparison() (ast.Expression, error) {
	return p.binaryLevel(p.term, lexer.Less, lexer.LessEqual, lexer.Greater, lexer.GreaterEqual)
}

func (p *Parser) term() (ast.Expression, error) {
	return p.binaryLevel(p.factor, lexer.Minus, lexer.Plus)
}

func (p *Parser) factor() (ast.Expression, error) {
	return p.binaryLevel(p.unary, lexer.Slash, lexer.Star)
}

// binaryLevel parses one left-associative precedence level: parse an operand
// with the next-tighter rule, then keep extending leftwards while the current
// token is one of the level's operators.
func (p *Parser) binaryLevel(operand func() (ast.Expression, error), operators ...lexer.Kind) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(operators...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expression, error) {
	if p.match(lexer.Bang, lexer.Minus) {
		operator := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(operator, operand), nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expression, error) {
	token := p.peek()
	switch token.Kind {
	case lexer.Number:
		p.advance()
		return ast.NewNumberLiteral(token.Literal.(float64)), nil
	case lexer.String:
		p.advance()
		return ast.NewStringLiteral(token.Literal.(string)), nil
	case lexer.True:
		p.advance()
		return ast.NewBooleanLiteral(true), nil
	case lexer.False:
		p.advance()
		return ast.NewBooleanLiteral(false), nil
	case lexer.Nil:
		p.advance()
		return ast.NewNilLiteral(), nil
	case lexer.Identifier:
		p.advance()
		return ast.NewIdentifier(token), nil
	case lexer.LeftParen:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RightParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return ast.NewGrouping(inner), nil
	default:
		return nil, errorAt(token, "expected expression")
	}
}

// Token cursor helpers.

func (p *Parser) match(kinds ...lexer.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind lexer.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.EOF
}

func (p *Parser) record(err error) {
	if syntaxErr, ok := err.(*SyntaxError); ok {
		p.errs = append(p.errs, syntaxErr)
		return
	}
	p.errs = append(p.errs, &SyntaxError{Message: err.Error()})
}

func (p *Parser) consume(kind lexer.Kind, message string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, errorAt(p.peek(), message)
}

// synchronize discards tokens until a statement boundary: just past a
// semicolon, or in front of a keyword that starts a new statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == lexer.Semicolon {
			return
		}
		switch p.peek().Kind {
		case lexer.Var, lexer.For, lexer.If, lexer.While, lexer.Print:
			return
		}
		p.advance()
	}
}
