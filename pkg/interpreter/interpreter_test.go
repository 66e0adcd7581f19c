package interpreter_test

import (
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/rhino1998/forof/pkg/ast"
	"github.com/rhino1998/forof/pkg/environment"
	"github.com/rhino1998/forof/pkg/interpreter"
	"github.com/rhino1998/forof/pkg/value"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	r := require.New(t)
	logger := slogt.New(t)

	_, err := interpreter.New(logger, interpreter.Config{MaxIterations: -1})
	r.Error(err)

	_, err = interpreter.New(logger, interpreter.Config{MaxCallDepth: -1})
	r.Error(err)

	_, err = interpreter.New(logger, interpreter.DefaultConfig())
	r.NoError(err)
}

func TestRun_BlockScoping(t *testing.T) {
	r := require.New(t)
	interp := newInterpreter(t, interpreter.DefaultConfig())
	env, rec := setup(t, interp)

	_, err := interp.Run(env, []ast.Statement{
		ast.Do(
			ast.Decl(ast.Let, ast.DeclareInit("inner", ast.Num(1))),
			ast.Decl(ast.Var, ast.DeclareInit("hoisted", ast.Num(2))),
		),
		record(ast.Ident("hoisted")),
	})
	r.NoError(err)
	r.Equal([]value.Value{value.Number(2)}, rec.values)
	r.False(env.HasBinding("inner"))
	requireBalanced(t, env)
}

func TestRun_Redeclaration(t *testing.T) {
	r := require.New(t)
	interp := newInterpreter(t, interpreter.DefaultConfig())
	env, _ := setup(t, interp)

	_, err := interp.Run(env, []ast.Statement{
		ast.Decl(ast.Let, ast.DeclareInit("a", ast.Num(1))),
		ast.Decl(ast.Let, ast.DeclareInit("a", ast.Num(2))),
	})
	r.ErrorIs(err, environment.ErrRedeclared)
}

func TestRun_ConstRequiresInitializer(t *testing.T) {
	r := require.New(t)
	interp := newInterpreter(t, interpreter.DefaultConfig())
	env, _ := setup(t, interp)

	_, err := interp.Run(env, []ast.Statement{ast.ConstOf("c")})

	var syntaxErr *interpreter.SyntaxError
	r.ErrorAs(err, &syntaxErr)
}

func TestRun_StrictAssignment(t *testing.T) {
	r := require.New(t)

	sloppy := newInterpreter(t, interpreter.DefaultConfig())
	env, _ := setup(t, sloppy)
	_, err := sloppy.Run(env, []ast.Statement{ast.Eval(ast.Set(ast.Ident("g"), ast.Num(1)))})
	r.NoError(err)
	r.True(env.HasBinding("g"))

	strict := newInterpreter(t, interpreter.Config{Strict: true, MaxCallDepth: 16})
	env, _ = setup(t, strict)
	_, err = strict.Run(env, []ast.Statement{ast.Eval(ast.Set(ast.Ident("g"), ast.Num(1)))})
	r.ErrorIs(err, environment.ErrUndeclared)
}

func TestRun_StraySignals(t *testing.T) {
	r := require.New(t)
	interp := newInterpreter(t, interpreter.DefaultConfig())
	env, _ := setup(t, interp)

	_, err := interp.Run(env, []ast.Statement{ast.BreakTo("")})
	r.ErrorContains(err, "illegal break statement")

	_, err = interp.Run(env, []ast.Statement{ast.NewForOf(ast.LetOf("x"), nums(1), ast.ContinueTo("nowhere"))})
	r.ErrorContains(err, "undefined label 'nowhere'")
	requireBalanced(t, env)
}

func TestRun_LabeledBlockConsumesBreak(t *testing.T) {
	r := require.New(t)
	interp := newInterpreter(t, interpreter.DefaultConfig())
	env, rec := setup(t, interp)

	block, err := ast.NewLabeled("done", ast.Do(
		ast.NewForOf(ast.LetOf("x"), nums(1, 2), ast.Do(
			record(ast.Ident("x")),
			ast.BreakTo("done"),
		)),
		record(ast.Str("skipped")),
	))
	r.NoError(err)

	_, err = interp.Run(env, []ast.Statement{block, record(ast.Str("after"))})
	r.NoError(err)
	r.Equal([]value.Value{value.Number(1), value.String("after")}, rec.values)
	requireBalanced(t, env)
}

func TestCall_DepthLimit(t *testing.T) {
	r := require.New(t)
	interp := newInterpreter(t, interpreter.Config{MaxCallDepth: 8})
	env, _ := setup(t, interp)

	// let f = () => f(); f()
	_, err := interp.Run(env, []ast.Statement{
		ast.Decl(ast.Let, ast.DeclareInit("f", ast.Func(nil, ast.CallOf(ast.Ident("f"))))),
		ast.Eval(ast.CallOf(ast.Ident("f"))),
	})
	r.ErrorIs(err, interpreter.ErrCallDepth)
	requireBalanced(t, env)
}

func TestCall_NotAFunction(t *testing.T) {
	r := require.New(t)
	interp := newInterpreter(t, interpreter.DefaultConfig())
	env, _ := setup(t, interp)

	_, err := interp.Run(env, []ast.Statement{ast.Eval(ast.CallOf(ast.Num(1)))})

	var typeErr *interpreter.TypeError
	r.ErrorAs(err, &typeErr)
}

func TestEvaluate_Operators(t *testing.T) {
	tests := []struct {
		expr     ast.Expression
		expected value.Value
	}{
		{ast.Bin(ast.Num(1), "+", ast.Num(2)), value.Number(3)},
		{ast.Bin(ast.Str("a"), "+", ast.Num(1)), value.String("a1")},
		{ast.Bin(ast.Num(7), "%", ast.Num(4)), value.Number(3)},
		{ast.Bin(ast.Num(1), "<", ast.Num(2)), value.Bool(true)},
		{ast.Bin(ast.Str("b"), "<=", ast.Str("a")), value.Bool(false)},
		{ast.Bin(ast.Num(2), ">=", ast.Num(2)), value.Bool(true)},
		{ast.Bin(ast.Num(1), "===", ast.Str("1")), value.Bool(false)},
		{ast.Bin(ast.Str("x"), "!==", ast.Str("y")), value.Bool(true)},
	}

	interp := newInterpreter(t, interpreter.DefaultConfig())
	env, _ := setup(t, interp)

	for _, tt := range tests {
		t.Run(tt.expr.String(), func(t *testing.T) {
			r := require.New(t)

			v, err := interp.Evaluate(env, tt.expr)
			r.NoError(err)
			r.Equal(tt.expected, v)
		})
	}

	_, err := interp.Evaluate(env, ast.Bin(ast.Num(1), "<", ast.Str("a")))
	var typeErr *interpreter.TypeError
	require.ErrorAs(t, err, &typeErr)
}
