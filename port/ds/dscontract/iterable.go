package dscontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/seqkit/port/ds"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

type IterableSubject[T any] interface {
	ds.Iterable[T]
	ds.Appendable[T]
	ds.Len
}

type IterableConfig[T any] struct {
	MakeElem func(tb testing.TB) T
}

func (ic IterableConfig[T]) Configure(t *IterableConfig[T]) {
	if ic.MakeElem != nil {
		t.MakeElem = ic.MakeElem
	}
}

type IterableOption[T any] option.Option[IterableConfig[T]]

// Iterable returns the contract of ds.Iterable.
// The Make function must return an empty subject.
func Iterable[T any, Subject IterableSubject[T]](mk contract.Make[Subject], opts ...IterableOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[IterableConfig[T]](opts)

	collect := func(i ds.Iterator[T]) []T {
		var vs []T
		for i.Next() {
			vs = append(vs, i.Value())
		}
		return vs
	}

	s.Test("an empty subject yields nothing", func(t *testcase.T) {
		subject := mk(t)

		assert.False(t, subject.Iterate().Next())
		for range subject.Values() {
			t.Fatal("no value was expected")
		}
	})

	s.Test("values are visited in order", func(t *testcase.T) {
		var (
			subject = mk(t)
			values  = mkValues(t, c.MakeElem, 3, 7)
		)
		ds.Collect[T](subject, values...)

		assert.Equal(t, values, collect(subject.Iterate()))

		var got []T
		for v := range subject.Values() {
			got = append(got, v)
		}
		assert.Equal(t, values, got)
	})

	s.Test("an exhausted cursor stays exhausted", func(t *testcase.T) {
		var (
			subject = mk(t)
			values  = mkValues(t, c.MakeElem, 1, 3)
		)
		ds.Collect[T](subject, values...)

		i := subject.Iterate()
		for i.Next() {
		}
		assert.False(t, i.Next())
	})

	s.Test("every call makes a fresh traversal from the start", func(t *testcase.T) {
		var (
			subject = mk(t)
			values  = mkValues(t, c.MakeElem, 3, 7)
		)
		ds.Collect[T](subject, values...)

		first := subject.Iterate()
		assert.True(t, first.Next())
		assert.True(t, first.Next())

		assert.Equal(t, values, collect(subject.Iterate()))
		assert.Equal(t, values[1], first.Value())
	})

	s.Test("breaking out of the range stops the traversal", func(t *testcase.T) {
		var (
			subject = mk(t)
			values  = mkValues(t, c.MakeElem, 3, 7)
		)
		ds.Collect[T](subject, values...)

		var got []T
		for v := range subject.Values() {
			got = append(got, v)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, values[:2], got)
	})

	s.Test("appending during the traversal does not extend the traversal beyond the captured length", func(t *testcase.T) {
		var (
			subject = mk(t)
			values  = mkValues(t, c.MakeElem, 3, 7)
		)
		ds.Collect[T](subject, values...)

		var n int
		for v := range subject.Values() {
			subject.Add(v)
			n++
		}
		assert.Equal(t, len(values), n)
		assert.Equal(t, len(values)*2, subject.Len())
	})

	return s.AsSuite(fmt.Sprintf("Iterable[%s]", typeName[T]()))
}
