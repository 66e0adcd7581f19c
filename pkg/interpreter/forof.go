package interpreter

import (
	"errors"
	"fmt"

	"github.com/rhino1998/forof/pkg/ast"
	"github.com/rhino1998/forof/pkg/completion"
	"github.com/rhino1998/forof/pkg/environment"
	"github.com/rhino1998/forof/pkg/iterator"
	"github.com/rhino1998/forof/pkg/value"
)

// RunForOf executes a for-of loop. The returned completion is normal when the
// loop ran to exhaustion or consumed a break, and is otherwise a break,
// continue or return aimed at an enclosing construct.
func (s *Interpreter) RunForOf(env *environment.Environment, loop *ast.ForOfLoop) (completion.Completion, error) {
	label, _ := loop.Label()
	logger := s.logger.With("loop", loop.Pos().String(), "label", label)

	iterable, err := s.Evaluate(env, loop.Iterable)
	if err != nil {
		return completion.Completion{}, err
	}

	it, err := iterator.GetIterator(env, iterable)
	if err != nil {
		return completion.Completion{}, loop.Iterable.WrapError(err)
	}

	outer := env.Current()
	result := value.Undefined

	for n := 0; ; n++ {
		c, done, err := s.forOfStep(env, outer, loop, it, n)
		if err != nil {
			logger.Debug("for-of loop failed", "iterations", n, "error", err)
			return completion.Completion{}, err
		}

		if done {
			logger.Debug("for-of loop exhausted", "iterations", n)
			return completion.Normal(result), nil
		}

		switch c.Kind {
		case completion.KindNormal:
			result = c.Value
		case completion.KindBreak:
			if c.Targets(label) {
				logger.Debug("for-of loop broken", "iterations", n+1)
				return completion.Normal(result), nil
			}

			logger.Debug("propagating break", "target", c.Label)
			return c, nil
		case completion.KindContinue:
			if c.Targets(label) {
				continue
			}

			logger.Debug("propagating continue", "target", c.Label)
			return c, nil
		case completion.KindReturn:
			return c, nil
		default:
			return completion.Completion{}, loop.WrapError(ErrUnexpectedErrorCompletion)
		}
	}
}

// forOfStep runs a single iteration inside its own frame. The frame is popped
// on every path out of the step. n is the number of bodies already run; the
// iteration limit only trips when the iterator yields past it.
func (s *Interpreter) forOfStep(env *environment.Environment, outer *environment.Frame, loop *ast.ForOfLoop, it iterator.Iterator, n int) (c completion.Completion, done bool, err error) {
	env.Push(outer, "for-of")
	defer func() {
		popErr := env.Pop()
		if popErr != nil {
			err = errors.Join(err, popErr)
		}
	}()

	next, err := it.Next(env)
	if err != nil {
		return c, false, loop.Iterable.WrapError(err)
	}

	if next.Done {
		return c, true, nil
	}

	if s.config.MaxIterations > 0 && n >= s.config.MaxIterations {
		return c, false, loop.WrapError(fmt.Errorf("%w: %d", ErrIterationLimit, s.config.MaxIterations))
	}

	v := next.Value
	if v == nil {
		v = value.Undefined
	}

	err = s.installLoopBinding(env, loop.Target, v)
	if err != nil {
		return c, false, err
	}

	c, err = s.Execute(env, loop.Body)
	if err != nil {
		return c, false, err
	}

	return c, false, nil
}
