// Package iterator adapts runtime values to the pull-based iteration
// protocol consumed by loops.
package iterator

import (
	"fmt"

	"github.com/rhino1998/forof/pkg/environment"
	"github.com/rhino1998/forof/pkg/value"
)

// Result is the outcome of one Next call. Value is meaningless when Done.
type Result struct {
	Done  bool
	Value value.Value
}

func Yield(v value.Value) Result {
	return Result{Value: v}
}

var Done = Result{Done: true, Value: value.Undefined}

type Iterator interface {
	Next(env *environment.Environment) (Result, error)
}

// Iterable is implemented by values that supply their own iterator.
type Iterable interface {
	value.Value
	Iterator(env *environment.Environment) (Iterator, error)
}

type NotIterableError struct {
	Value value.Value
}

func (e *NotIterableError) Error() string {
	return fmt.Sprintf("%s is not iterable", e.Value.Kind())
}

// GetIterator opens an iterator over v.
func GetIterator(env *environment.Environment, v value.Value) (Iterator, error) {
	switch v := v.(type) {
	case Iterable:
		it, err := v.Iterator(env)
		if err != nil {
			return nil, fmt.Errorf("failed to get iterator: %w", err)
		}

		return it, nil
	case *value.Array:
		return &arrayIterator{array: v}, nil
	case value.String:
		runes := []rune(string(v))
		elems := make([]value.Value, len(runes))
		for i, r := range runes {
			elems[i] = value.String(string(r))
		}

		return FromSlice(elems), nil
	case nil:
		return nil, &NotIterableError{Value: value.Undefined}
	default:
		return nil, &NotIterableError{Value: v}
	}
}

// arrayIterator reads the array's length on every step, so elements appended
// by the loop body are visited.
type arrayIterator struct {
	array *value.Array
	index int
}

func (it *arrayIterator) Next(*environment.Environment) (Result, error) {
	if it.index >= it.array.Len() {
		return Done, nil
	}

	v := it.array.Elements[it.index]
	it.index++
	return Yield(v), nil
}

type sliceIterator struct {
	values []value.Value
}

func FromSlice(values []value.Value) Iterator {
	return &sliceIterator{values: values}
}

func (it *sliceIterator) Next(*environment.Environment) (Result, error) {
	if len(it.values) == 0 {
		return Done, nil
	}

	var v value.Value
	v, it.values = it.values[0], it.values[1:]
	return Yield(v), nil
}

// Func adapts a plain function to an Iterator.
type Func func(env *environment.Environment) (Result, error)

func (f Func) Next(env *environment.Environment) (Result, error) {
	return f(env)
}
