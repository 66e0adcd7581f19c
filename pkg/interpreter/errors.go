package interpreter

import (
	"errors"
	"fmt"

	"github.com/rhino1998/forof/pkg/value"
)

var (
	ErrIterationLimit = errors.New("loop iteration limit exceeded")
	ErrCallDepth      = errors.New("maximum call stack size exceeded")

	// ErrUnexpectedErrorCompletion means a statement reported an error
	// completion without failing. Executors report failures through their
	// error return, so this is a host runtime defect.
	ErrUnexpectedErrorCompletion = errors.New("error completion reached loop without a failure")
)

// SyntaxError is a language-level error about the shape of the program that
// is only detected while running it.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string {
	return "SyntaxError: " + e.Message
}

func syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}

type TypeError struct {
	Message string
}

func (e *TypeError) Error() string {
	return "TypeError: " + e.Message
}

func typeErrorf(format string, args ...any) error {
	return &TypeError{Message: fmt.Sprintf(format, args...)}
}

// ThrowError carries a value thrown by the program.
type ThrowError struct {
	Value value.Value
}

func (e *ThrowError) Error() string {
	return "Uncaught " + e.Value.String()
}
