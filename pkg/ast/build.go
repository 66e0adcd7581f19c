package ast

import "github.com/rhino1998/forof/pkg/value"

// Helpers for building trees by hand. They leave positions unset.

func Num(n float64) *Literal {
	return &Literal{Value: value.Number(n)}
}

func Str(s string) *Literal {
	return &Literal{Value: value.String(s)}
}

func Bool(b bool) *Literal {
	return &Literal{Value: value.Bool(b)}
}

func Undefined() *Literal {
	return &Literal{Value: value.Undefined}
}

func Ident(name string) *Identifier {
	return &Identifier{Name: name}
}

func Array(elems ...Expression) *ArrayLiteral {
	return &ArrayLiteral{Elements: elems}
}

func Bin(left Expression, op string, right Expression) *Binary {
	return &Binary{Operator: op, Left: left, Right: right}
}

func Set(target Expression, v Expression) *Assign {
	return &Assign{Target: target, Value: v}
}

func CallOf(callee Expression, args ...Expression) *Call {
	return &Call{Callee: callee, Args: args}
}

// Func builds an arrow function returning expr.
func Func(params []string, expr Expression) *Arrow {
	return &Arrow{Params: params, Body: &Return{Argument: expr}}
}

func Decl(kind DeclKind, decls ...*Declarator) *DeclarationList {
	return &DeclarationList{Kind: kind, Declarators: decls}
}

func Declare(name string) *Declarator {
	return &Declarator{Name: name}
}

func DeclareInit(name string, init Expression) *Declarator {
	return &Declarator{Name: name, Init: init}
}

func VarOf(name string) *DeclarationList {
	return Decl(Var, Declare(name))
}

func LetOf(name string) *DeclarationList {
	return Decl(Let, Declare(name))
}

func ConstOf(name string) *DeclarationList {
	return Decl(Const, Declare(name))
}

func Do(stmts ...Statement) *Block {
	return &Block{Body: stmts}
}

func Eval(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{Expression: expr}
}

func IfThen(cond Expression, then Statement) *If {
	return &If{Condition: cond, Then: then}
}

func BreakTo(label string) *Break {
	return &Break{Label: label}
}

func ContinueTo(label string) *Continue {
	return &Continue{Label: label}
}

func Ret(arg Expression) *Return {
	return &Return{Argument: arg}
}

func Raise(arg Expression) *Throw {
	return &Throw{Argument: arg}
}
