// Package runtime holds Slate's runtime value model and the lexical
// environment chain the interpreter evaluates against.
package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindNil
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNil:
		return "nil"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. The value set is
// closed: adding a kind means extending the Kind constants and every
// exhaustive switch over them.
type Value interface {
	Kind() Kind
	// Display renders the value the way `print` writes it: integral numbers
	// without a decimal part, strings unquoted, booleans as true/false, and
	// nil as nil.
	Display() string
}

// NumberValue is a double-precision float.
type NumberValue struct {
	Val float64
}

func (NumberValue) Kind() Kind { return KindNumber }

func (v NumberValue) Display() string {
	return strconv.FormatFloat(v.Val, 'f', -1, 64)
}

// StringValue is immutable text.
type StringValue struct {
	Val string
}

func (StringValue) Kind() Kind { return KindString }

func (v StringValue) Display() string { return v.Val }

type BoolValue struct {
	Val bool
}

func (BoolValue) Kind() Kind { return KindBool }

func (v BoolValue) Display() string { return strconv.FormatBool(v.Val) }

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

func (NilValue) Display() string { return "nil" }

// Truthy maps a value to a condition outcome. Nil, false, and the number
// zero are falsy; every other value, including the empty string, is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case NilValue:
		return false
	case BoolValue:
		return val.Val
	case NumberValue:
		return val.Val != 0
	default:
		return true
	}
}

// Equals reports structural equality. Values of different kinds are never
// equal; nil equals only nil.
func Equals(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch left := a.(type) {
	case NumberValue:
		return left.Val == b.(NumberValue).Val
	case StringValue:
		return left.Val == b.(StringValue).Val
	case BoolValue:
		return left.Val == b.(BoolValue).Val
	case NilValue:
		return true
	default:
		return false
	}
}
