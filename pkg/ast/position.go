package ast

import "fmt"

type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) Pos() Position {
	return p
}

func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	switch {
	case p.File != "" && p.Line > 0:
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	case p.Line > 0:
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	default:
		return p.File
	}
}

// WrapError attaches the position to err. Errors that already carry a
// position are returned unchanged so the innermost location wins.
func (p Position) WrapError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := err.(*PositionError); ok {
		return err
	}

	return &PositionError{Position: p, Err: err}
}

type PositionError struct {
	Position Position
	Err      error
}

func (e *PositionError) Error() string {
	if !e.Position.IsValid() && e.Position.File == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Position, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}
