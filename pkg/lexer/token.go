package lexer

import "fmt"

// Kind identifies the lexical category of a token.
type Kind int

const (
	// Single-character tokens.
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Or
	If
	Else
	While
	For
	Var
	Print
	True
	False
	Nil

	EOF
)

var kindNames = map[Kind]string{
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	Comma:        "Comma",
	Dot:          "Dot",
	Minus:        "Minus",
	Plus:         "Plus",
	Semicolon:    "Semicolon",
	Slash:        "Slash",
	Star:         "Star",
	Bang:         "Bang",
	BangEqual:    "BangEqual",
	Equal:        "Equal",
	EqualEqual:   "EqualEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Identifier:   "Identifier",
	String:       "String",
	Number:       "Number",
	And:          "And",
	Or:           "Or",
	If:           "If",
	Else:         "Else",
	While:        "While",
	For:          "For",
	Var:          "Var",
	Print:        "Print",
	True:         "True",
	False:        "False",
	Nil:          "Nil",
	EOF:          "EOF",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText renders the kind by name so AST exports stay readable.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// keywords maps reserved identifiers to their token kinds.
var keywords = map[string]Kind{
	"and":   And,
	"or":    Or,
	"if":    If,
	"else":  Else,
	"while": While,
	"for":   For,
	"var":   Var,
	"print": Print,
	"true":  True,
	"false": False,
	"nil":   Nil,
}

// Token is a single lexical unit pointing back to its source position.
// Literal carries the decoded value for Number (float64) and String (string)
// tokens and is nil for everything else.
type Token struct {
	Kind    Kind   `json:"kind"`
	Lexeme  string `json:"lexeme"`
	Literal any    `json:"literal,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

func (t Token) String() string {
	switch t.Kind {
	case Number, String:
		return fmt.Sprintf("%s %v", t.Kind, t.Literal)
	default:
		return fmt.Sprintf("%s %s", t.Kind, t.Lexeme)
	}
}
