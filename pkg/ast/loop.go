package ast

import (
	"errors"
	"fmt"
)

var (
	ErrLabelAlreadySet = errors.New("loop label already set")
	ErrEmptyLabel      = errors.New("loop label must not be empty")
)

// Labelable is implemented by statements that match labeled break and
// continue themselves.
type Labelable interface {
	Statement
	Label() (string, bool)
	SetLabel(label string) error
}

// ForOfLoop is `for (Target of Iterable) Body`. Target is an *Identifier, a
// *DeclarationList or, for malformed input, any other node; the interpreter
// rejects the latter at run time.
type ForOfLoop struct {
	Target   Node
	Iterable Expression
	Body     Statement

	label    string
	hasLabel bool

	Position
}

func NewForOf(target Node, iterable Expression, body Statement) *ForOfLoop {
	return &ForOfLoop{
		Target:   target,
		Iterable: iterable,
		Body:     body,
	}
}

func (*ForOfLoop) statement() {}

func (f *ForOfLoop) Label() (string, bool) {
	return f.label, f.hasLabel
}

// SetLabel attaches the enclosing statement label. It may be called once,
// before the loop first runs.
func (f *ForOfLoop) SetLabel(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}

	if f.hasLabel {
		return fmt.Errorf("%w: %q", ErrLabelAlreadySet, f.label)
	}

	f.label = label
	f.hasLabel = true
	return nil
}

func (f *ForOfLoop) String() string {
	s := fmt.Sprintf("for (%s of %s) %s", f.Target, f.Iterable, terminated(f.Body))
	if f.hasLabel {
		return f.label + ": " + s
	}

	return s
}

// Labeled is `Label: Body`. Build it with NewLabeled so a loop body learns
// its label.
type Labeled struct {
	Label string
	Body  Statement
	Position
}

// NewLabeled wraps body in a label, attaching the label to body when body is
// a loop.
func NewLabeled(label string, body Statement) (*Labeled, error) {
	if label == "" {
		return nil, body.WrapError(ErrEmptyLabel)
	}

	if l, ok := body.(Labelable); ok {
		err := l.SetLabel(label)
		if err != nil {
			return nil, body.WrapError(err)
		}
	}

	return &Labeled{Label: label, Body: body}, nil
}

func (*Labeled) statement() {}

func (l *Labeled) String() string {
	if inner, ok := l.Body.(Labelable); ok {
		if label, ok := inner.Label(); ok && label == l.Label {
			return inner.String()
		}
	}

	return l.Label + ": " + l.Body.String()
}
