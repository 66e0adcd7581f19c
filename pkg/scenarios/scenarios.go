// Package scenarios holds hand-built programs exercising for-of loops. They
// back the forof command and the golden tests.
package scenarios

import (
	"fmt"
	"slices"
	"strings"

	. "github.com/rhino1998/forof/pkg/ast"
)

type Scenario struct {
	Name        string
	Description string

	build func() []Statement
}

// Program builds a fresh copy of the scenario's program. Loop labels are
// attached during building, so copies are never shared between runs.
func (s Scenario) Program() []Statement {
	return s.build()
}

func (s Scenario) String() string {
	var sb strings.Builder
	for _, stmt := range s.Program() {
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

func All() []Scenario {
	return slices.Clone(registry)
}

func Lookup(name string) (Scenario, error) {
	for _, sc := range registry {
		if sc.Name == name {
			return sc, nil
		}
	}

	return Scenario{}, fmt.Errorf("no such scenario %q", name)
}

func label(name string, body Statement) *Labeled {
	l, err := NewLabeled(name, body)
	if err != nil {
		panic(err)
	}

	return l
}

func print(args ...Expression) Statement {
	return Eval(CallOf(Ident("print"), args...))
}

var registry = []Scenario{
	{
		Name:        "let-capture",
		Description: "each iteration of a let loop gets its own binding",
		build: func() []Statement {
			return []Statement{
				Decl(Let, DeclareInit("fns", Array())),
				NewForOf(LetOf("x"), Array(Num(1), Num(2), Num(3)),
					Do(Eval(CallOf(Ident("push"), Ident("fns"), Func(nil, Ident("x")))))),
				NewForOf(ConstOf("f"), Ident("fns"),
					print(CallOf(Ident("f")))),
			}
		},
	},
	{
		Name:        "var-reuse",
		Description: "a var loop variable outlives the loop with the last value",
		build: func() []Statement {
			return []Statement{
				NewForOf(VarOf("x"), Array(Num(1), Num(2), Num(3)), Do()),
				print(Ident("x")),
				Eval(Ident("x")),
			}
		},
	},
	{
		Name:        "identifier-target",
		Description: "a bare identifier head assigns to the existing binding",
		build: func() []Statement {
			return []Statement{
				Decl(Let, DeclareInit("y", Num(0))),
				NewForOf(Ident("y"), Array(Str("a"), Str("b")), Do()),
				print(Ident("y")),
			}
		},
	},
	{
		Name:        "let-no-leak",
		Description: "a let loop variable is not visible after the loop",
		build: func() []Statement {
			return []Statement{
				NewForOf(LetOf("x"), Array(Num(1)), Do()),
				print(Ident("x")),
			}
		},
	},
	{
		Name:        "const-mutation",
		Description: "assigning to a const loop variable fails",
		build: func() []Statement {
			return []Statement{
				NewForOf(ConstOf("x"), Array(Num(1), Num(2)), Do(
					print(Ident("x")),
					Eval(Set(Ident("x"), Num(2))),
				)),
			}
		},
	},
	{
		Name:        "let-initializer",
		Description: "a let head with an initializer is rejected",
		build: func() []Statement {
			return []Statement{
				NewForOf(Decl(Let, DeclareInit("x", Num(1))), Array(Num(1)), print(Str("unreachable"))),
			}
		},
	},
	{
		Name:        "var-initializer",
		Description: "a var head with an initializer is rejected",
		build: func() []Statement {
			return []Statement{
				NewForOf(Decl(Var, DeclareInit("x", Num(1))), Array(Num(1)), print(Str("unreachable"))),
			}
		},
	},
	{
		Name:        "multiple-declarations",
		Description: "only one variable may be declared in the head",
		build: func() []Statement {
			return []Statement{
				NewForOf(Decl(Let, Declare("a"), Declare("b")), Array(Array(Num(1), Num(2))), print(Str("unreachable"))),
			}
		},
	},
	{
		Name:        "unknown-head",
		Description: "an array pattern head is not supported",
		build: func() []Statement {
			return []Statement{
				NewForOf(Array(Ident("a")), Array(Array(Num(1))), print(Str("unreachable"))),
			}
		},
	},
	{
		Name:        "labeled-continue",
		Description: "continue outer resumes the outer loop",
		build: func() []Statement {
			inner := NewForOf(LetOf("y"), Array(Num(1), Num(2)), Do(
				print(Ident("x"), Ident("y")),
				IfThen(Bin(Ident("y"), "===", Num(1)), ContinueTo("outer")),
				print(Str("unreachable")),
			))

			return []Statement{
				label("outer", NewForOf(LetOf("x"), Array(Num(1), Num(2)), Do(
					inner,
					print(Str("unreachable")),
				))),
				print(Str("done")),
			}
		},
	},
	{
		Name:        "unlabeled-continue",
		Description: "a bare continue only affects the innermost loop",
		build: func() []Statement {
			inner := NewForOf(LetOf("y"), Array(Num(1), Num(2)), Do(
				IfThen(Bin(Ident("y"), "===", Num(1)), ContinueTo("")),
				print(Ident("x"), Ident("y")),
			))

			return []Statement{
				NewForOf(LetOf("x"), Array(Num(1), Num(2)), Do(
					inner,
					print(Str("after"), Ident("x")),
				)),
			}
		},
	},
	{
		Name:        "labeled-break",
		Description: "break outer leaves both loops",
		build: func() []Statement {
			inner := NewForOf(LetOf("y"), Array(Num(1), Num(2), Num(3)), Do(
				IfThen(Bin(Bin(Ident("x"), "*", Ident("y")), "===", Num(4)), BreakTo("outer")),
				print(Ident("x"), Ident("y")),
			))

			return []Statement{
				label("outer", NewForOf(LetOf("x"), Array(Num(1), Num(2), Num(3)), inner)),
				print(Str("done")),
			}
		},
	},
	{
		Name:        "labeled-block-break",
		Description: "a break aimed at a labeled block passes through the loop",
		build: func() []Statement {
			return []Statement{
				label("block", Do(
					NewForOf(LetOf("x"), Array(Num(1), Num(2)), Do(
						print(Ident("x")),
						BreakTo("block"),
					)),
					print(Str("unreachable")),
				)),
				print(Str("out")),
			}
		},
	},
	{
		Name:        "nested-return",
		Description: "return inside two loops leaves the function",
		build: func() []Statement {
			body := Do(
				NewForOf(LetOf("x"), Array(Num(1), Num(2)), Do(
					NewForOf(LetOf("y"), Array(Num(3), Num(4)), Do(
						Ret(Bin(Ident("x"), "+", Ident("y"))),
					)),
				)),
				Ret(Num(-1)),
			)

			return []Statement{
				Decl(Const, DeclareInit("f", &Arrow{Body: body})),
				print(CallOf(Ident("f"))),
			}
		},
	},
	{
		Name:        "top-level-return",
		Description: "return inside a top-level loop ends the program with its value",
		build: func() []Statement {
			return []Statement{
				NewForOf(LetOf("x"), Array(Num(5), Num(6)), Ret(Ident("x"))),
				print(Str("unreachable")),
			}
		},
	},
	{
		Name:        "failing-iterator",
		Description: "an iterator failing on its second step aborts after one iteration",
		build: func() []Statement {
			return []Statement{
				NewForOf(LetOf("x"), CallOf(Ident("flaky"), Num(1)), print(Ident("x"))),
			}
		},
	},
	{
		Name:        "throw-in-body",
		Description: "a thrown value aborts the loop",
		build: func() []Statement {
			return []Statement{
				NewForOf(LetOf("x"), Array(Num(1), Num(2)), Do(
					print(Ident("x")),
					Raise(Str("boom")),
				)),
			}
		},
	},
	{
		Name:        "not-iterable",
		Description: "iterating a number fails before any iteration",
		build: func() []Statement {
			return []Statement{
				NewForOf(LetOf("x"), Num(42), print(Ident("x"))),
			}
		},
	},
	{
		Name:        "string-iteration",
		Description: "strings iterate by code point",
		build: func() []Statement {
			return []Statement{
				NewForOf(ConstOf("ch"), Str("héllo"), print(Ident("ch"))),
			}
		},
	},
	{
		Name:        "completion-value",
		Description: "the loop's value is its last normal body value",
		build: func() []Statement {
			return []Statement{
				NewForOf(LetOf("x"), Array(Num(1), Num(2), Num(3)), Eval(Bin(Ident("x"), "*", Num(2)))),
			}
		},
	},
	{
		Name:        "break-value",
		Description: "a consumed break keeps the value of the last normal iteration",
		build: func() []Statement {
			return []Statement{
				NewForOf(LetOf("x"), Array(Num(1), Num(2), Num(3)), Do(
					IfThen(Bin(Ident("x"), "===", Num(2)), BreakTo("")),
					Eval(Ident("x")),
				)),
			}
		},
	},
	{
		Name:        "empty-iterable",
		Description: "an empty iterable never runs the body",
		build: func() []Statement {
			return []Statement{
				NewForOf(LetOf("x"), Array(), print(Str("unreachable"))),
			}
		},
	},
	{
		Name:        "growing-array",
		Description: "elements appended during iteration are visited",
		build: func() []Statement {
			return []Statement{
				Decl(Let, DeclareInit("xs", Array(Num(1)))),
				NewForOf(LetOf("x"), Ident("xs"), Do(
					print(Ident("x")),
					IfThen(Bin(Ident("x"), "<", Num(3)), Eval(CallOf(Ident("push"), Ident("xs"), Bin(Ident("x"), "+", Num(1))))),
				)),
			}
		},
	},
}
