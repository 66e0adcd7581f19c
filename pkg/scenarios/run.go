package scenarios

import (
	"fmt"
	"io"

	"github.com/rhino1998/forof/pkg/environment"
	"github.com/rhino1998/forof/pkg/interpreter"
	"github.com/rhino1998/forof/pkg/value"
)

// NewEnvironment returns a global environment with the scenario builtins
// defined. print writes to out.
func NewEnvironment(interp *interpreter.Interpreter, out io.Writer) (*environment.Environment, error) {
	env := environment.New("global")

	builtins := []*value.Native{
		value.NewNative("print", printFunc(out)),
		value.NewNative("push", push),
		value.NewNative("flaky", flaky),
	}

	for _, fn := range builtins {
		err := interp.Define(env, fn.Name, fn)
		if err != nil {
			return nil, fmt.Errorf("failed to define builtin %s: %w", fn.Name, err)
		}
	}

	return env, nil
}

// Run builds the scenario's program and executes it in a fresh environment.
func Run(interp *interpreter.Interpreter, sc Scenario, out io.Writer) (value.Value, *environment.Environment, error) {
	env, err := NewEnvironment(interp, out)
	if err != nil {
		return nil, nil, err
	}

	result, err := interp.Run(env, sc.Program())
	if err != nil {
		return nil, env, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	return result, env, nil
}
