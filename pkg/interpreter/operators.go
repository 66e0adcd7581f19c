package interpreter

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/rhino1998/forof/pkg/value"
)

func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (s *Interpreter) binaryOperate(lhs, rhs value.Value, op string) (value.Value, error) {
	switch op {
	case "===":
		return value.Bool(value.StrictEqual(lhs, rhs)), nil
	case "!==":
		return value.Bool(!value.StrictEqual(lhs, rhs)), nil
	case "+":
		if lhs.Kind() == value.KindString || rhs.Kind() == value.KindString {
			return value.String(lhs.String() + rhs.String()), nil
		}

		a, b, err := s.numbersOrFail(lhs, rhs, op)
		if err != nil {
			return nil, err
		}

		return value.Number(a + b), nil
	case "-", "*", "/", "%":
		a, b, err := s.numbersOrFail(lhs, rhs, op)
		if err != nil {
			return nil, err
		}

		switch op {
		case "-":
			return value.Number(a - b), nil
		case "*":
			return value.Number(a * b), nil
		case "/":
			return value.Number(a / b), nil
		default:
			return value.Number(math.Mod(a, b)), nil
		}
	case "<", "<=", ">", ">=":
		cmp, err := s.compareOrFail(lhs, rhs, op)
		if err != nil {
			return nil, err
		}

		switch op {
		case "<":
			return value.Bool(cmp < 0), nil
		case "<=":
			return value.Bool(cmp <= 0), nil
		case ">":
			return value.Bool(cmp > 0), nil
		default:
			return value.Bool(cmp >= 0), nil
		}
	default:
		return nil, syntaxErrorf("unsupported binary operator %q", op)
	}
}

func (s *Interpreter) numbersOrFail(lhs, rhs value.Value, op string) (float64, float64, error) {
	a, ok := lhs.(value.Number)
	if !ok {
		return 0, 0, typeErrorf("left operand of %s must be a number, got %s", op, lhs.Kind())
	}

	b, ok := rhs.(value.Number)
	if !ok {
		return 0, 0, typeErrorf("right operand of %s must be a number, got %s", op, rhs.Kind())
	}

	return float64(a), float64(b), nil
}

func (s *Interpreter) compareOrFail(lhs, rhs value.Value, op string) (int, error) {
	switch a := lhs.(type) {
	case value.Number:
		if b, ok := rhs.(value.Number); ok {
			return compare(float64(a), float64(b)), nil
		}
	case value.String:
		if b, ok := rhs.(value.String); ok {
			return compare(string(a), string(b)), nil
		}
	}

	return 0, typeErrorf("cannot compare %s %s %s", lhs.Kind(), op, rhs.Kind())
}
