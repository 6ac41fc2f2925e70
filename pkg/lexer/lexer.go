// Package lexer turns raw Slate source text into a flat token sequence.
// Scanning is a single left-to-right pass; every malformed construct is
// recorded as an Error and scanning continues, so one pass reports as many
// lexical problems as the source contains.
package lexer

import (
	"fmt"
	"strconv"
)

// Error is a lexical diagnostic attached to a 1-based source position.
type Error struct {
	Line    int
	Column  int
	Message string
}

// Error renders the diagnostic in the driver's reporting format.
func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Lexer scans Slate source into tokens.
type Lexer struct {
	source  []byte
	start   int
	current int
	line    int
	column  int

	tokens []Token
	errs   []*Error
}

// New creates a lexer over the given source text.
func New(source []byte) *Lexer {
	return &Lexer{source: source, line: 1}
}

// Scan consumes the whole source and returns the tokens recognised plus any
// lexical errors found along the way. The token slice always ends with an EOF
// marker, even when errors were reported.
func (l *Lexer) Scan() ([]Token, []*Error) {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, Token{Kind: EOF, Line: l.line, Column: l.column + 1})
	return l.tokens, l.errs
}

func (l *Lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.addToken(LeftParen)
	case ')':
		l.addToken(RightParen)
	case '{':
		l.addToken(LeftBrace)
	case '}':
		l.addToken(RightBrace)
	case ',':
		l.addToken(Comma)
	case '.':
		l.addToken(Dot)
	case '-':
		l.addToken(Minus)
	case '+':
		l.addToken(Plus)
	case ';':
		l.addToken(Semicolon)
	case '*':
		l.addToken(Star)
	case '!':
		l.addMatched('=', BangEqual, Bang)
	case '=':
		l.addMatched('=', EqualEqual, Equal)
	case '<':
		l.addMatched('=', LessEqual, Less)
	case '>':
		l.addMatched('=', GreaterEqual, Greater)
	case '/':
		if l.peek() == '/' {
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		} else {
			l.addToken(Slash)
		}
	case '"':
		l.scanString()
	case ' ', '\r', '\t':
		// Ignored.
	case '\n':
		l.line++
		l.column = 0
	default:
		switch {
		case isDigit(c):
			l.scanNumber()
		case isAlpha(c):
			l.scanIdentifier()
		default:
			l.report("unexpected character '" + string(c) + "'")
		}
	}
}

func (l *Lexer) scanString() {
	openLine, openColumn := l.line, l.column
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
			l.column = 0
		}
		l.advance()
	}
	if l.isAtEnd() {
		l.errs = append(l.errs, &Error{Line: openLine, Column: openColumn, Message: "unterminated string"})
		return
	}
	l.advance() // closing quote
	literal := string(l.source[l.start+1 : l.current-1])
	l.addLiteralToken(String, literal)
}

func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}
	// A fractional part is only consumed when a digit follows the dot, so
	// "1." lexes as the number 1 and a Dot token.
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	lexeme := string(l.source[l.start:l.current])
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		l.report("invalid number literal " + lexeme)
		return
	}
	l.addLiteralToken(Number, value)
}

func (l *Lexer) scanIdentifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	lexeme := string(l.source[l.start:l.current])
	if kind, ok := keywords[lexeme]; ok {
		l.addToken(kind)
		return
	}
	l.addToken(Identifier)
}

func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	l.column++
	return c
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// addMatched emits twoChar when the next byte matches expected (maximal
// munch), oneChar otherwise.
func (l *Lexer) addMatched(expected byte, twoChar, oneChar Kind) {
	if !l.isAtEnd() && l.peek() == expected {
		l.advance()
		l.addToken(twoChar)
		return
	}
	l.addToken(oneChar)
}

func (l *Lexer) addToken(kind Kind) {
	l.addLiteralToken(kind, nil)
}

func (l *Lexer) addLiteralToken(kind Kind, literal any) {
	lexeme := string(l.source[l.start:l.current])
	column := l.column - (l.current - l.start) + 1
	l.tokens = append(l.tokens, Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: l.line, Column: column})
}

func (l *Lexer) report(message string) {
	l.errs = append(l.errs, &Error{Line: l.line, Column: l.column, Message: message})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
