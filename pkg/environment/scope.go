package environment

import (
	"github.com/rhino1998/forof/pkg/value"
)

type Binding struct {
	Value       value.Value
	Mutable     bool
	Initialized bool
	Deletable   bool
}

// Frame is one declarative scope. Frames only point at their parents, so a
// closure holding a frame keeps that frame and its ancestors reachable and
// nothing else.
type Frame struct {
	parent   *Frame
	name     string
	function bool
	scope    map[string]*Binding
}

func newFrame(parent *Frame, name string, function bool) *Frame {
	return &Frame{
		scope:    make(map[string]*Binding),
		name:     name,
		function: function,
		parent:   parent,
	}
}

func (f *Frame) Name() string {
	return f.name
}

func (f *Frame) Parent() *Frame {
	return f.parent
}

func (f *Frame) IsFunction() bool {
	return f.function
}

// Own returns the binding declared directly in f.
func (f *Frame) Own(name string) (*Binding, bool) {
	b, ok := f.scope[name]
	return b, ok
}

// Lookup resolves name in f or the nearest ancestor declaring it.
func (f *Frame) Lookup(name string) (*Binding, *Frame, bool) {
	if f == nil {
		return nil, nil, false
	}

	b, ok := f.scope[name]
	if ok {
		return b, f, true
	}

	return f.parent.Lookup(name)
}

// Get returns the value of name as seen from f.
func (f *Frame) Get(name string) (value.Value, error) {
	b, _, ok := f.Lookup(name)
	if !ok {
		return nil, &BindingError{Name: name, Err: ErrUndeclared}
	}

	if !b.Initialized {
		return nil, &BindingError{Name: name, Err: ErrUninitialized}
	}

	return b.Value, nil
}

func (f *Frame) functionFrame() *Frame {
	if f.function || f.parent == nil {
		return f
	}

	return f.parent.functionFrame()
}

func (f *Frame) declare(name string, b *Binding) error {
	if _, ok := f.scope[name]; ok {
		return &BindingError{Name: name, Err: ErrRedeclared}
	}

	f.scope[name] = b
	return nil
}

// Names returns the names declared directly in f.
func (f *Frame) Names() []string {
	names := make([]string, 0, len(f.scope))
	for name := range f.scope {
		names = append(names, name)
	}

	return names
}
