package interpreter

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rhino1998/forof/pkg/ast"
	"github.com/rhino1998/forof/pkg/completion"
	"github.com/rhino1998/forof/pkg/environment"
	"github.com/rhino1998/forof/pkg/value"
)

type Interpreter struct {
	logger *slog.Logger
	config Config

	depth int
}

func New(logger *slog.Logger, config Config) (*Interpreter, error) {
	err := config.Validate(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to validate interpreter config: %w", err)
	}

	return &Interpreter{
		logger: logger,
		config: config,
	}, nil
}

// Run executes program against env and returns its completion value. A
// top-level return ends the program early with the returned value.
func (s *Interpreter) Run(env *environment.Environment, program []ast.Statement) (value.Value, error) {
	start := env.Depth()
	result := value.Undefined
	for _, stmt := range program {
		c, err := s.Execute(env, stmt)
		if err != nil {
			return nil, err
		}

		switch c.Kind {
		case completion.KindNormal:
			result = c.Value
		case completion.KindReturn:
			return c.Value, nil
		case completion.KindBreak, completion.KindContinue:
			return nil, stmt.WrapError(unmatchedSignal(c))
		default:
			return nil, stmt.WrapError(ErrUnexpectedErrorCompletion)
		}
	}

	if depth := env.Depth(); depth != start {
		return nil, fmt.Errorf("%d scope frames left on the environment after run", depth-start)
	}

	return result, nil
}

// Define binds name to v as a constant in the current frame.
func (s *Interpreter) Define(env *environment.Environment, name string, v value.Value) error {
	err := env.CreateImmutableBinding(name, false, environment.Block)
	if err != nil {
		return err
	}

	return env.InitializeBinding(name, v)
}

func unmatchedSignal(c completion.Completion) error {
	if c.Label != "" {
		return syntaxErrorf("undefined label '%s'", c.Label)
	}

	return syntaxErrorf("illegal %s statement", c.Kind)
}

// Execute runs one statement in the current frame of env.
func (s *Interpreter) Execute(env *environment.Environment, stmt ast.Statement) (completion.Completion, error) {
	switch stmt := stmt.(type) {
	case *ast.ForOfLoop:
		return s.RunForOf(env, stmt)
	case *ast.Block:
		return s.withFrame(env, env.Current(), "block", func() (completion.Completion, error) {
			return s.executeBlock(env, stmt.Body)
		})
	case *ast.DeclarationList:
		err := s.declare(env, stmt)
		if err != nil {
			return completion.Completion{}, stmt.WrapError(err)
		}

		return completion.Normal(value.Undefined), nil
	case *ast.ExpressionStatement:
		v, err := s.Evaluate(env, stmt.Expression)
		if err != nil {
			return completion.Completion{}, err
		}

		return completion.Normal(v), nil
	case *ast.If:
		cond, err := s.Evaluate(env, stmt.Condition)
		if err != nil {
			return completion.Completion{}, err
		}

		if value.Truthy(cond) {
			return s.Execute(env, stmt.Then)
		} else if stmt.Else != nil {
			return s.Execute(env, stmt.Else)
		}

		return completion.Normal(value.Undefined), nil
	case *ast.Break:
		return completion.Break(stmt.Label), nil
	case *ast.Continue:
		return completion.Continue(stmt.Label), nil
	case *ast.Return:
		if stmt.Argument == nil {
			return completion.Return(value.Undefined), nil
		}

		v, err := s.Evaluate(env, stmt.Argument)
		if err != nil {
			return completion.Completion{}, err
		}

		return completion.Return(v), nil
	case *ast.Throw:
		v, err := s.Evaluate(env, stmt.Argument)
		if err != nil {
			return completion.Completion{}, err
		}

		return completion.Completion{}, stmt.WrapError(&ThrowError{Value: v})
	case *ast.Labeled:
		c, err := s.Execute(env, stmt.Body)
		if err != nil {
			return completion.Completion{}, err
		}

		if c.Kind == completion.KindBreak && c.Label == stmt.Label {
			return completion.Normal(value.Undefined), nil
		}

		return c, nil
	default:
		return completion.Completion{}, stmt.WrapError(fmt.Errorf("unhandled statement type: %T", stmt))
	}
}

func (s *Interpreter) executeBlock(env *environment.Environment, body []ast.Statement) (completion.Completion, error) {
	result := value.Undefined
	for _, stmt := range body {
		c, err := s.Execute(env, stmt)
		if err != nil {
			return completion.Completion{}, err
		}

		if c.IsAbrupt() {
			return c, nil
		}

		result = c.Value
	}

	return completion.Normal(result), nil
}

// withFrame runs fn with a fresh block frame on top of env and always pops it.
func (s *Interpreter) withFrame(env *environment.Environment, parent *environment.Frame, name string, fn func() (completion.Completion, error)) (c completion.Completion, err error) {
	env.Push(parent, name)
	defer func() {
		popErr := env.Pop()
		if popErr != nil {
			err = errors.Join(err, popErr)
		}
	}()

	return fn()
}

func (s *Interpreter) declare(env *environment.Environment, decls *ast.DeclarationList) error {
	for _, decl := range decls.Declarators {
		var v value.Value = value.Undefined
		if decl.Init != nil {
			var err error
			v, err = s.Evaluate(env, decl.Init)
			if err != nil {
				return err
			}
		} else if decls.Kind == ast.Const {
			return syntaxErrorf("missing initializer in const declaration")
		}

		var err error
		switch decls.Kind {
		case ast.Var:
			if env.HasBinding(decl.Name) {
				if decl.Init == nil {
					continue
				}

				err = env.SetMutableBinding(decl.Name, v, true)
			} else {
				err = env.CreateMutableBinding(decl.Name, false, environment.Function)
				if err == nil {
					err = env.InitializeBinding(decl.Name, v)
				}
			}
		case ast.Let:
			err = env.CreateMutableBinding(decl.Name, false, environment.Block)
			if err == nil {
				err = env.InitializeBinding(decl.Name, v)
			}
		case ast.Const:
			err = env.CreateImmutableBinding(decl.Name, false, environment.Block)
			if err == nil {
				err = env.InitializeBinding(decl.Name, v)
			}
		default:
			err = fmt.Errorf("unhandled declaration kind %s", decls.Kind)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
