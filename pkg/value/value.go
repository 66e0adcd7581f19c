package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Kind int

const (
	KindUndefined Kind = iota
	KindNumber
	KindString
	KindBool
	KindArray
	KindFunction
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindArray:
		return "array"
	case KindFunction:
		return "function"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a runtime value. Implementations outside this package may
// represent host objects as long as they report one of the kinds above.
type Value interface {
	Kind() Kind
	Raw() any
	String() string
}

type undefined struct{}

// Undefined is the value of uninitialized slots and empty completions.
var Undefined Value = undefined{}

func (undefined) Kind() Kind     { return KindUndefined }
func (undefined) Raw() any       { return nil }
func (undefined) String() string { return "undefined" }

type Number float64

func (n Number) Kind() Kind { return KindNumber }
func (n Number) Raw() any   { return float64(n) }

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

type String string

func (s String) Kind() Kind     { return KindString }
func (s String) Raw() any       { return string(s) }
func (s String) String() string { return string(s) }

type Bool bool

func (b Bool) Kind() Kind     { return KindBool }
func (b Bool) Raw() any       { return bool(b) }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

type Array struct {
	Elements []Value
}

func NewArray(elems ...Value) *Array {
	return &Array{Elements: elems}
}

func (a *Array) Kind() Kind { return KindArray }
func (a *Array) Raw() any   { return a.Elements }

func (a *Array) Len() int {
	return len(a.Elements)
}

func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, elem := range a.Elements {
		parts[i] = elem.String()
	}

	return "[" + strings.Join(parts, ",") + "]"
}

// Truthy reports the boolean interpretation of v used by conditionals.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case Bool:
		return bool(v)
	case Number:
		return v != 0 && !math.IsNaN(float64(v))
	case String:
		return v != ""
	default:
		return v.Kind() != KindUndefined
	}
}

// StrictEqual compares two values without coercion. Arrays and functions
// compare by identity.
func StrictEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch a.Kind() {
	case KindUndefined:
		return true
	case KindNumber, KindString, KindBool:
		return a.Raw() == b.Raw()
	default:
		return a == b
	}
}
