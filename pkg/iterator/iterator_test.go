package iterator_test

import (
	"testing"

	"github.com/rhino1998/forof/pkg/environment"
	"github.com/rhino1998/forof/pkg/iterator"
	"github.com/rhino1998/forof/pkg/value"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, env *environment.Environment, it iterator.Iterator) []value.Value {
	t.Helper()

	var values []value.Value
	for {
		res, err := it.Next(env)
		require.NoError(t, err)

		if res.Done {
			return values
		}

		values = append(values, res.Value)
	}
}

func TestGetIterator_Array(t *testing.T) {
	r := require.New(t)
	env := environment.New("global")

	arr := value.NewArray(value.Number(1), value.Number(2))
	it, err := iterator.GetIterator(env, arr)
	r.NoError(err)

	first, err := it.Next(env)
	r.NoError(err)
	r.Equal(value.Number(1), first.Value)

	arr.Elements = append(arr.Elements, value.Number(3))
	r.Equal([]value.Value{value.Number(2), value.Number(3)}, drain(t, env, it))

	res, err := it.Next(env)
	r.NoError(err)
	r.True(res.Done)
}

func TestGetIterator_String(t *testing.T) {
	r := require.New(t)
	env := environment.New("global")

	it, err := iterator.GetIterator(env, value.String("añ"))
	r.NoError(err)
	r.Equal([]value.Value{value.String("a"), value.String("ñ")}, drain(t, env, it))
}

func TestGetIterator_NotIterable(t *testing.T) {
	r := require.New(t)
	env := environment.New("global")

	for _, v := range []value.Value{value.Number(1), value.Bool(true), value.Undefined, nil} {
		_, err := iterator.GetIterator(env, v)

		var notIterable *iterator.NotIterableError
		r.ErrorAs(err, &notIterable)
	}
}

func TestFromSlice(t *testing.T) {
	r := require.New(t)
	env := environment.New("global")

	r.Empty(drain(t, env, iterator.FromSlice(nil)))
	r.Equal([]value.Value{value.String("a")}, drain(t, env, iterator.FromSlice([]value.Value{value.String("a")})))
}
