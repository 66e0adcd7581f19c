package interpreter

import (
	"github.com/rhino1998/forof/pkg/ast"
	"github.com/rhino1998/forof/pkg/environment"
	"github.com/rhino1998/forof/pkg/value"
)

const (
	msgLoopHeadInitializer = "a declaration in the head of a for-of loop can't have an initializer"
	msgLoopHeadMultiple    = "only one variable can be declared in the head of a for-of loop"
	msgLoopHeadUnknown     = "unknown left hand side in head of for-of loop"
)

// installLoopBinding binds the loop variable for one iteration in the current
// frame of env. Identifier and var targets reuse an existing function-level
// binding; let and const always declare a fresh one in the iteration frame.
func (s *Interpreter) installLoopBinding(env *environment.Environment, target ast.Node, v value.Value) error {
	switch target := target.(type) {
	case *ast.Identifier:
		return target.WrapError(s.assignOrCreate(env, target.Name, true, v))
	case *ast.DeclarationList:
		decl, err := loopHeadDeclarator(target)
		if err != nil {
			return target.WrapError(err)
		}

		switch target.Kind {
		case ast.Var:
			err = s.assignOrCreate(env, decl.Name, false, v)
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
			err = syntaxErrorf(msgLoopHeadUnknown)
		}

		return target.WrapError(err)
	case *ast.Assign:
		return target.WrapError(syntaxErrorf(msgLoopHeadInitializer))
	case nil:
		return syntaxErrorf(msgLoopHeadUnknown)
	default:
		return target.WrapError(syntaxErrorf(msgLoopHeadUnknown))
	}
}

func loopHeadDeclarator(list *ast.DeclarationList) (*ast.Declarator, error) {
	if len(list.Declarators) != 1 {
		return nil, syntaxErrorf(msgLoopHeadMultiple)
	}

	decl := list.Declarators[0]
	if decl.Init != nil {
		return nil, syntaxErrorf(msgLoopHeadInitializer)
	}

	return decl, nil
}

func (s *Interpreter) assignOrCreate(env *environment.Environment, name string, deletable bool, v value.Value) error {
	if env.HasBinding(name) {
		return env.SetMutableBinding(name, v, true)
	}

	err := env.CreateMutableBinding(name, deletable, environment.Function)
	if err != nil {
		return err
	}

	return env.InitializeBinding(name, v)
}
