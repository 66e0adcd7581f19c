// Package completion defines the result of executing a statement.
package completion

import (
	"fmt"

	"github.com/rhino1998/forof/pkg/value"
)

type Kind int

const (
	// KindNormal is a statement that fell through.
	KindNormal Kind = iota
	KindBreak
	KindContinue
	KindReturn
	// KindError is never produced by a successful execution; failures travel
	// through the error return instead.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindBreak:
		return "break"
	case KindContinue:
		return "continue"
	case KindReturn:
		return "return"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Completion is the signal a statement hands back to its enclosing construct.
// Label is only meaningful for break and continue; Value for normal and
// return.
type Completion struct {
	Kind  Kind
	Value value.Value
	Label string
}

func Normal(v value.Value) Completion {
	if v == nil {
		v = value.Undefined
	}

	return Completion{Kind: KindNormal, Value: v}
}

func Break(label string) Completion {
	return Completion{Kind: KindBreak, Label: label}
}

func Continue(label string) Completion {
	return Completion{Kind: KindContinue, Label: label}
}

func Return(v value.Value) Completion {
	if v == nil {
		v = value.Undefined
	}

	return Completion{Kind: KindReturn, Value: v}
}

func (c Completion) IsAbrupt() bool {
	return c.Kind != KindNormal
}

// Targets reports whether a break or continue is aimed at a construct
// labeled label. Unlabeled signals target the nearest construct, so they
// match regardless of label; labeled ones match by exact name.
func (c Completion) Targets(label string) bool {
	return c.Label == "" || c.Label == label
}

func (c Completion) String() string {
	switch c.Kind {
	case KindBreak, KindContinue:
		if c.Label != "" {
			return fmt.Sprintf("%s %s", c.Kind, c.Label)
		}

		return c.Kind.String()
	case KindNormal, KindReturn:
		if c.Value == nil {
			return fmt.Sprintf("%s(undefined)", c.Kind)
		}

		return fmt.Sprintf("%s(%s)", c.Kind, c.Value)
	default:
		return c.Kind.String()
	}
}
