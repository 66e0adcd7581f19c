package interpreter

import (
	"errors"
	"fmt"

	"github.com/rhino1998/forof/pkg/ast"
	"github.com/rhino1998/forof/pkg/completion"
	"github.com/rhino1998/forof/pkg/environment"
	"github.com/rhino1998/forof/pkg/value"
)

// Call invokes fn with args. Closures run in a new function frame whose
// parent is the frame they were created in, not the caller's.
func (s *Interpreter) Call(env *environment.Environment, fn value.Value, args ...value.Value) (value.Value, error) {
	if s.config.MaxCallDepth > 0 && s.depth >= s.config.MaxCallDepth {
		return nil, ErrCallDepth
	}

	s.depth++
	defer func() { s.depth-- }()

	switch fn := fn.(type) {
	case *value.Native:
		result, err := fn.Call(args)
		if err != nil {
			return nil, err
		}

		if result == nil {
			return value.Undefined, nil
		}

		return result, nil
	case *value.Closure:
		return s.callClosure(env, fn, args)
	default:
		return nil, typeErrorf("%s is not a function", fn)
	}
}

func (s *Interpreter) callClosure(env *environment.Environment, fn *value.Closure, args []value.Value) (result value.Value, err error) {
	scope, ok := fn.Scope.(*environment.Frame)
	if !ok {
		return nil, fmt.Errorf("closure has invalid scope %T", fn.Scope)
	}

	body, ok := fn.Body.(ast.Statement)
	if !ok {
		return nil, fmt.Errorf("closure has invalid body %T", fn.Body)
	}

	env.PushFunction(scope, "function")
	defer func() {
		popErr := env.Pop()
		if popErr != nil {
			err = errors.Join(err, popErr)
		}
	}()

	for i, param := range fn.Params {
		var arg value.Value = value.Undefined
		if i < len(args) {
			arg = args[i]
		}

		err := env.CreateMutableBinding(param, false, environment.Block)
		if err != nil {
			return nil, err
		}

		err = env.InitializeBinding(param, arg)
		if err != nil {
			return nil, err
		}
	}

	c, err := s.Execute(env, body)
	if err != nil {
		return nil, err
	}

	switch c.Kind {
	case completion.KindReturn:
		return c.Value, nil
	case completion.KindNormal:
		return value.Undefined, nil
	case completion.KindBreak, completion.KindContinue:
		return nil, body.WrapError(unmatchedSignal(c))
	default:
		return nil, body.WrapError(ErrUnexpectedErrorCompletion)
	}
}
