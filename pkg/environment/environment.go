// Package environment implements the chain of declarative scope frames that
// statements execute against.
package environment

import (
	"github.com/rhino1998/forof/pkg/value"
)

type ScopeKind int

const (
	// Function selects the nearest function-level frame.
	Function ScopeKind = iota
	// Block selects the current frame.
	Block
)

func (k ScopeKind) String() string {
	if k == Function {
		return "function"
	}

	return "block"
}

type Stats struct {
	Pushes int
	Pops   int
}

// Environment is the stack of active frames. The top of the stack is the
// current frame; a pushed frame need not be a child of the previous top, which
// is how calls switch to the scope a closure was defined in.
type Environment struct {
	frames []*Frame
	stats  Stats
}

// New returns an environment whose only frame is a function-level root.
func New(name string) *Environment {
	return &Environment{
		frames: []*Frame{newFrame(nil, name, true)},
	}
}

func (e *Environment) Root() *Frame {
	return e.frames[0]
}

func (e *Environment) Current() *Frame {
	return e.frames[len(e.frames)-1]
}

// Depth is the number of frames pushed on top of the root.
func (e *Environment) Depth() int {
	return len(e.frames) - 1
}

func (e *Environment) Stats() Stats {
	return e.stats
}

// Push makes a new empty block frame with the given parent current.
func (e *Environment) Push(parent *Frame, name string) *Frame {
	return e.push(newFrame(parent, name, false))
}

// PushFunction makes a new empty function-level frame current.
func (e *Environment) PushFunction(parent *Frame, name string) *Frame {
	return e.push(newFrame(parent, name, true))
}

func (e *Environment) push(f *Frame) *Frame {
	e.frames = append(e.frames, f)
	e.stats.Pushes++
	return f
}

// Pop discards the current frame. The root frame cannot be popped.
func (e *Environment) Pop() error {
	if len(e.frames) <= 1 {
		return ErrFrameUnderflow
	}

	e.frames[len(e.frames)-1] = nil
	e.frames = e.frames[:len(e.frames)-1]
	e.stats.Pops++
	return nil
}

func (e *Environment) HasBinding(name string) bool {
	_, _, ok := e.Current().Lookup(name)
	return ok
}

func (e *Environment) target(kind ScopeKind) *Frame {
	if kind == Function {
		return e.Current().functionFrame()
	}

	return e.Current()
}

func (e *Environment) CreateMutableBinding(name string, deletable bool, kind ScopeKind) error {
	return e.target(kind).declare(name, &Binding{
		Value:     value.Undefined,
		Mutable:   true,
		Deletable: deletable,
	})
}

func (e *Environment) CreateImmutableBinding(name string, deletable bool, kind ScopeKind) error {
	return e.target(kind).declare(name, &Binding{
		Value:     value.Undefined,
		Deletable: deletable,
	})
}

// InitializeBinding stores the first value of a declared binding.
func (e *Environment) InitializeBinding(name string, v value.Value) error {
	b, _, ok := e.Current().Lookup(name)
	if !ok {
		return &BindingError{Name: name, Err: ErrUndeclared}
	}

	b.Value = v
	b.Initialized = true
	return nil
}

// SetMutableBinding assigns to an existing binding. An unresolvable name is
// an error in strict mode and otherwise becomes a new function-level binding.
func (e *Environment) SetMutableBinding(name string, v value.Value, strict bool) error {
	b, _, ok := e.Current().Lookup(name)
	if !ok {
		if strict {
			return &BindingError{Name: name, Err: ErrUndeclared}
		}

		err := e.CreateMutableBinding(name, true, Function)
		if err != nil {
			return err
		}

		return e.InitializeBinding(name, v)
	}

	if !b.Initialized {
		return &BindingError{Name: name, Err: ErrUninitialized}
	}

	if !b.Mutable {
		return &BindingError{Name: name, Err: ErrImmutable}
	}

	b.Value = v
	return nil
}

func (e *Environment) GetBindingValue(name string) (value.Value, error) {
	return e.Current().Get(name)
}
