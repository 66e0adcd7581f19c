package interpreter

import (
	"fmt"

	"github.com/rhino1998/forof/pkg/ast"
	"github.com/rhino1998/forof/pkg/environment"
	"github.com/rhino1998/forof/pkg/value"
)

// Evaluate computes the value of expr in the current frame of env.
func (s *Interpreter) Evaluate(env *environment.Environment, expr ast.Expression) (value.Value, error) {
	switch expr := expr.(type) {
	case *ast.Literal:
		if expr.Value == nil {
			return value.Undefined, nil
		}

		return expr.Value, nil
	case *ast.Identifier:
		v, err := env.GetBindingValue(expr.Name)
		if err != nil {
			return nil, expr.WrapError(err)
		}

		return v, nil
	case *ast.ArrayLiteral:
		elems := make([]value.Value, 0, len(expr.Elements))
		for _, elem := range expr.Elements {
			v, err := s.Evaluate(env, elem)
			if err != nil {
				return nil, err
			}

			elems = append(elems, v)
		}

		return value.NewArray(elems...), nil
	case *ast.Binary:
		lhs, err := s.Evaluate(env, expr.Left)
		if err != nil {
			return nil, err
		}

		rhs, err := s.Evaluate(env, expr.Right)
		if err != nil {
			return nil, err
		}

		result, err := s.binaryOperate(lhs, rhs, expr.Operator)
		if err != nil {
			return nil, expr.WrapError(err)
		}

		return result, nil
	case *ast.Assign:
		target, ok := expr.Target.(*ast.Identifier)
		if !ok {
			return nil, expr.WrapError(syntaxErrorf("invalid assignment target %s", expr.Target))
		}

		v, err := s.Evaluate(env, expr.Value)
		if err != nil {
			return nil, err
		}

		err = env.SetMutableBinding(target.Name, v, s.config.Strict)
		if err != nil {
			return nil, expr.WrapError(err)
		}

		return v, nil
	case *ast.Call:
		callee, err := s.Evaluate(env, expr.Callee)
		if err != nil {
			return nil, err
		}

		args := make([]value.Value, 0, len(expr.Args))
		for _, arg := range expr.Args {
			v, err := s.Evaluate(env, arg)
			if err != nil {
				return nil, err
			}

			args = append(args, v)
		}

		result, err := s.Call(env, callee, args...)
		if err != nil {
			return nil, expr.WrapError(err)
		}

		return result, nil
	case *ast.Arrow:
		return value.NewClosure(expr.Params, expr.Body, env.Current(), expr.String()), nil
	default:
		return nil, expr.WrapError(fmt.Errorf("unhandled expression type: %T", expr))
	}
}
