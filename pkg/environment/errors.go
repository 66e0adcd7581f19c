package environment

import (
	"errors"
	"fmt"
)

var (
	ErrRedeclared    = errors.New("has already been declared")
	ErrUndeclared    = errors.New("is not defined")
	ErrUninitialized = errors.New("cannot be accessed before initialization")
	ErrImmutable     = errors.New("is a constant and cannot be reassigned")

	// ErrFrameUnderflow reports a Pop without a matching Push. It indicates a
	// bug in the host runtime rather than in the running program.
	ErrFrameUnderflow = errors.New("environment: pop without matching push")
)

type BindingError struct {
	Name string
	Err  error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("%s %v", e.Name, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}
