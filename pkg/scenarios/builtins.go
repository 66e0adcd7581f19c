package scenarios

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rhino1998/forof/pkg/environment"
	"github.com/rhino1998/forof/pkg/iterator"
	"github.com/rhino1998/forof/pkg/value"
)

var ErrIteratorFault = errors.New("iterator fault")

func printFunc(w io.Writer) value.NativeFunc {
	return func(args []value.Value) (value.Value, error) {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = arg.String()
		}

		_, err := fmt.Fprintln(w, strings.Join(parts, " "))
		if err != nil {
			return nil, err
		}

		return value.Undefined, nil
	}
}

// push appends to an array in place and returns its new length.
func push(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("push requires an array argument")
	}

	arr, ok := args[0].(*value.Array)
	if !ok {
		return nil, fmt.Errorf("push requires an array, got %s", args[0].Kind())
	}

	arr.Elements = append(arr.Elements, args[1:]...)
	return value.Number(arr.Len()), nil
}

// flaky returns an iterable yielding 1..n whose next call after that fails.
func flaky(args []value.Value) (value.Value, error) {
	n := 0
	if len(args) > 0 {
		num, ok := args[0].(value.Number)
		if !ok {
			return nil, fmt.Errorf("flaky requires a number, got %s", args[0].Kind())
		}

		n = int(num)
	}

	return &flakyIterable{yields: n}, nil
}

type flakyIterable struct {
	yields int
}

func (f *flakyIterable) Kind() value.Kind { return value.KindObject }
func (f *flakyIterable) Raw() any         { return f }
func (f *flakyIterable) String() string   { return fmt.Sprintf("flaky(%d)", f.yields) }

func (f *flakyIterable) Iterator(*environment.Environment) (iterator.Iterator, error) {
	calls := 0
	return iterator.Func(func(*environment.Environment) (iterator.Result, error) {
		calls++
		if calls > f.yields {
			return iterator.Result{}, fmt.Errorf("%w on call %d", ErrIteratorFault, calls)
		}

		return iterator.Yield(value.Number(calls)), nil
	}), nil
}
