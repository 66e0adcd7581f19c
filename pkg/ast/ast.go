// Package ast holds the syntax tree consumed by the interpreter. Nodes are
// built by a parser or by hand; nothing here evaluates them.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rhino1998/forof/pkg/value"
)

type Node interface {
	fmt.Stringer
	Pos() Position
	WrapError(err error) error
}

type Statement interface {
	Node
	statement()
}

type Expression interface {
	Node
	expression()
}

type Literal struct {
	Value value.Value
	Position
}

func (*Literal) expression() {}

func (l *Literal) String() string {
	if s, ok := l.Value.(value.String); ok {
		return strconv.Quote(string(s))
	}

	return l.Value.String()
}

type Identifier struct {
	Name string
	Position
}

func (*Identifier) expression() {}

func (i *Identifier) String() string {
	return i.Name
}

type ArrayLiteral struct {
	Elements []Expression
	Position
}

func (*ArrayLiteral) expression() {}

func (a *ArrayLiteral) String() string {
	return "[" + joinNodes(a.Elements, ", ") + "]"
}

type Binary struct {
	Operator string
	Left     Expression
	Right    Expression
	Position
}

func (*Binary) expression() {}

func (b *Binary) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Operator, b.Right)
}

// Assign is a plain assignment expression. Target is usually an Identifier.
type Assign struct {
	Target Expression
	Value  Expression
	Position
}

func (*Assign) expression() {}

func (a *Assign) String() string {
	return fmt.Sprintf("%s = %s", a.Target, a.Value)
}

type Call struct {
	Callee Expression
	Args   []Expression
	Position
}

func (*Call) expression() {}

func (c *Call) String() string {
	return fmt.Sprintf("%s(%s)", c.Callee, joinNodes(c.Args, ", "))
}

// Arrow is a function literal. Expression-bodied arrows are represented with
// a Return statement as Body.
type Arrow struct {
	Params []string
	Body   Statement
	Position
}

func (*Arrow) expression() {}

func (a *Arrow) String() string {
	params := "(" + strings.Join(a.Params, ", ") + ")"
	if ret, ok := a.Body.(*Return); ok && ret.Argument != nil {
		return fmt.Sprintf("%s => %s", params, ret.Argument)
	}

	return fmt.Sprintf("%s => %s", params, a.Body)
}

func joinNodes[N Node](nodes []N, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}

	return strings.Join(parts, sep)
}
