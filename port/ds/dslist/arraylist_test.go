package dslist_test

import (
	"testing"

	"go.llib.dev/seqkit/port/ds"
	"go.llib.dev/seqkit/port/ds/dslist"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestArrayList(t *testing.T) {
	s := testcase.NewSpec(t)

	list := let.Var(s, func(t *testcase.T) *dslist.ArrayList[int] {
		return dslist.NewArrayList[int]()
	})

	s.Test("initial capacity", func(t *testcase.T) {
		assert.Equal(t, dslist.DefaultInitialCapacity, list.Get(t).Cap())
		assert.Equal(t, 0, list.Get(t).Len())
	})

	s.Describe("growth", func(s *testcase.Spec) {
		s.Test("capacity doubles only when an insertion finds the buffer full", func(t *testcase.T) {
			for i := 0; i < dslist.DefaultInitialCapacity; i++ {
				list.Get(t).Add(i)
			}
			assert.Equal(t, dslist.DefaultInitialCapacity, list.Get(t).Cap())

			list.Get(t).Add(42)
			assert.Equal(t, dslist.DefaultInitialCapacity*2, list.Get(t).Cap())
			assert.Equal(t, dslist.DefaultInitialCapacity+1, list.Get(t).Len())
		})

		s.Test("growing through AddFirst and AddAt keeps the order", func(t *testcase.T) {
			var exp []int
			for i := 0; i < dslist.DefaultInitialCapacity; i++ {
				list.Get(t).Add(i)
				exp = append(exp, i)
			}
			list.Get(t).AddFirst(-1)
			assert.NoError(t, list.Get(t).AddAt(5, 100))

			exp = append([]int{-1}, exp...)
			exp = append(exp[:5], append([]int{100}, exp[5:]...)...)
			assert.Equal(t, exp, list.Get(t).ToSlice())
		})

		s.Test("capacity never shrinks", func(t *testcase.T) {
			for i := 0; i < dslist.DefaultInitialCapacity*3; i++ {
				list.Get(t).Add(i)
			}
			capacity := list.Get(t).Cap()

			for !ds.Empty(list.Get(t)) {
				assert.NoError(t, list.Get(t).RemoveLast())
			}
			list.Get(t).Clear()
			assert.Equal(t, capacity, list.Get(t).Cap())
		})

		s.Test("the zero value starts with the default capacity on first insertion", func(t *testcase.T) {
			var l dslist.ArrayList[int]
			assert.Equal(t, 0, l.Cap())

			l.Add(1)
			assert.Equal(t, dslist.DefaultInitialCapacity, l.Cap())
		})
	})

	s.When("initial capacity is configured", func(s *testcase.Spec) {
		capacity := let.IntB(s, 1, 5)

		list.Let(s, func(t *testcase.T) *dslist.ArrayList[int] {
			return dslist.NewArrayList[int](dslist.InitialCapacity[int](capacity.Get(t)))
		})

		s.Then("it is used as the starting capacity", func(t *testcase.T) {
			assert.Equal(t, capacity.Get(t), list.Get(t).Cap())

			for i := 0; i <= capacity.Get(t); i++ {
				list.Get(t).Add(i)
			}
			assert.Equal(t, capacity.Get(t)*2, list.Get(t).Cap())
		})
	})

	s.Test("sort keeps the capacity", func(t *testcase.T) {
		ds.Collect[int](list.Get(t), 5, 4, 3, 2, 1)
		capacity := list.Get(t).Cap()

		list.Get(t).Sort(ds.Ascending[int]())

		assert.Equal(t, []int{1, 2, 3, 4, 5}, list.Get(t).ToSlice())
		assert.Equal(t, capacity, list.Get(t).Cap())
	})

	s.Test("ToSlice has no spare capacity", func(t *testcase.T) {
		ds.Collect[int](list.Get(t), 1, 2, 3)

		vs := list.Get(t).ToSlice()
		assert.Equal(t, 3, cap(vs))
	})

	s.Test("a cursor does not read past the current length after removals", func(t *testcase.T) {
		ds.Collect[int](list.Get(t), 1, 2, 3, 4)

		i := list.Get(t).Iterate()
		assert.True(t, i.Next())
		assert.Equal(t, 1, i.Value())

		assert.NoError(t, list.Get(t).RemoveLast())
		assert.NoError(t, list.Get(t).RemoveLast())

		var rest []int
		for i.Next() {
			rest = append(rest, i.Value())
		}
		assert.Equal(t, []int{2}, rest)
	})
}
