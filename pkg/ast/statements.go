package ast

import (
	"fmt"
	"strings"
)

type DeclKind int

const (
	Var DeclKind = iota
	Let
	Const
)

func (k DeclKind) String() string {
	switch k {
	case Var:
		return "var"
	case Let:
		return "let"
	case Const:
		return "const"
	default:
		return fmt.Sprintf("DeclKind(%d)", int(k))
	}
}

type Declarator struct {
	Name string
	Init Expression
}

func (d *Declarator) String() string {
	if d.Init == nil {
		return d.Name
	}

	return fmt.Sprintf("%s = %s", d.Name, d.Init)
}

// DeclarationList is a var, let or const statement. It also appears as the
// head of a for-of loop.
type DeclarationList struct {
	Kind        DeclKind
	Declarators []*Declarator
	Position
}

func (*DeclarationList) statement() {}

func (d *DeclarationList) String() string {
	parts := make([]string, len(d.Declarators))
	for i, decl := range d.Declarators {
		parts[i] = decl.String()
	}

	return fmt.Sprintf("%s %s", d.Kind, strings.Join(parts, ", "))
}

// terminated renders stmt as it appears in a statement list.
func terminated(stmt Statement) string {
	switch stmt := stmt.(type) {
	case *Block, *If, *ForOfLoop:
		return stmt.String()
	case *Labeled:
		return stmt.Label + ": " + strings.TrimPrefix(terminated(stmt.Body), stmt.Label+": ")
	default:
		return stmt.String() + ";"
	}
}

type Block struct {
	Body []Statement
	Position
}

func (*Block) statement() {}

func (b *Block) String() string {
	if len(b.Body) == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{ ")
	for _, stmt := range b.Body {
		sb.WriteString(terminated(stmt))
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

type ExpressionStatement struct {
	Expression Expression
	Position
}

func (*ExpressionStatement) statement() {}

func (e *ExpressionStatement) String() string {
	return e.Expression.String()
}

type If struct {
	Condition Expression
	Then      Statement
	Else      Statement
	Position
}

func (*If) statement() {}

func (i *If) String() string {
	if i.Else == nil {
		return fmt.Sprintf("if (%s) %s", i.Condition, terminated(i.Then))
	}

	return fmt.Sprintf("if (%s) %s else %s", i.Condition, terminated(i.Then), terminated(i.Else))
}

type Break struct {
	Label string
	Position
}

func (*Break) statement() {}

func (b *Break) String() string {
	if b.Label == "" {
		return "break"
	}

	return "break " + b.Label
}

type Continue struct {
	Label string
	Position
}

func (*Continue) statement() {}

func (c *Continue) String() string {
	if c.Label == "" {
		return "continue"
	}

	return "continue " + c.Label
}

type Return struct {
	Argument Expression
	Position
}

func (*Return) statement() {}

func (r *Return) String() string {
	if r.Argument == nil {
		return "return"
	}

	return "return " + r.Argument.String()
}

type Throw struct {
	Argument Expression
	Position
}

func (*Throw) statement() {}

func (t *Throw) String() string {
	return "throw " + t.Argument.String()
}
