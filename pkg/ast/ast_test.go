package ast_test

import (
	"errors"
	"testing"

	"github.com/rhino1998/forof/pkg/ast"
	"github.com/stretchr/testify/require"
)

func TestForOfLoop_SetLabelOnce(t *testing.T) {
	r := require.New(t)

	loop := ast.NewForOf(ast.LetOf("x"), ast.Ident("xs"), ast.Do())
	_, ok := loop.Label()
	r.False(ok)

	r.NoError(loop.SetLabel("outer"))
	label, ok := loop.Label()
	r.True(ok)
	r.Equal("outer", label)

	r.ErrorIs(loop.SetLabel("again"), ast.ErrLabelAlreadySet)
	label, _ = loop.Label()
	r.Equal("outer", label)
}

func TestForOfLoop_EmptyLabelRejected(t *testing.T) {
	r := require.New(t)

	loop := ast.NewForOf(ast.LetOf("x"), ast.Ident("xs"), ast.Do())
	r.ErrorIs(loop.SetLabel(""), ast.ErrEmptyLabel)

	_, ok := loop.Label()
	r.False(ok)

	_, err := ast.NewLabeled("", loop)
	r.ErrorIs(err, ast.ErrEmptyLabel)
	r.Equal("for (let x of xs) {}", loop.String())

	r.NoError(loop.SetLabel("outer"))

	_, err = ast.NewLabeled("", ast.Do(ast.BreakTo("")))
	r.ErrorIs(err, ast.ErrEmptyLabel)
}

func TestNewLabeled(t *testing.T) {
	r := require.New(t)

	loop := ast.NewForOf(ast.ConstOf("x"), ast.Ident("xs"), ast.Eval(ast.Ident("x")))
	labeled, err := ast.NewLabeled("outer", loop)
	r.NoError(err)
	r.Same(loop, labeled.Body)

	label, ok := loop.Label()
	r.True(ok)
	r.Equal("outer", label)
	r.Equal("outer: for (const x of xs) x;", labeled.String())

	_, err = ast.NewLabeled("second", loop)
	r.ErrorIs(err, ast.ErrLabelAlreadySet)

	block, err := ast.NewLabeled("blk", ast.Do(ast.BreakTo("blk")))
	r.NoError(err)
	r.Equal("blk: { break blk; }", block.String())
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		node     ast.Node
		expected string
	}{
		{ast.NewForOf(ast.Ident("x"), ast.Array(ast.Num(1), ast.Str("a")), ast.Do()), `for (x of [1, "a"]) {}`},
		{ast.NewForOf(ast.Decl(ast.Var, ast.DeclareInit("x", ast.Num(1))), ast.Ident("xs"), ast.ContinueTo("")), "for (var x = 1 of xs) continue;"},
		{ast.Decl(ast.Let, ast.Declare("a"), ast.Declare("b")), "let a, b"},
		{ast.IfThen(ast.Bin(ast.Ident("a"), "===", ast.Num(1)), ast.Ret(nil)), "if (a === 1) return;"},
		{ast.Func([]string{"a"}, ast.Ident("a")), "(a) => a"},
		{ast.CallOf(ast.Ident("f"), ast.Num(1), ast.Num(2)), "f(1, 2)"},
		{ast.Raise(ast.Str("boom")), `throw "boom"`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.node.String())
		})
	}
}

func TestPositionWrapError(t *testing.T) {
	r := require.New(t)

	errBase := errors.New("base")
	pos := ast.Position{File: "main.js", Line: 3, Column: 7}

	err := pos.WrapError(errBase)
	r.ErrorIs(err, errBase)
	r.EqualError(err, "main.js:3:7: base")

	outer := ast.Position{File: "main.js", Line: 1, Column: 1}
	r.Same(err, outer.WrapError(err))

	r.NoError(pos.WrapError(nil))
	r.EqualError(ast.Position{}.WrapError(errBase), "base")
}
