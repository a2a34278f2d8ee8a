package dsstack_test

import (
	"testing"

	"go.llib.dev/seqkit/port/ds"
	"go.llib.dev/seqkit/port/ds/dslist"
	"go.llib.dev/seqkit/port/ds/dsstack"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestStack(t *testing.T) {
	s := testcase.NewSpec(t)

	for name, mkSeq := range map[string]func() ds.Sequence[int]{
		"ArrayList":  func() ds.Sequence[int] { return dslist.NewArrayList[int]() },
		"LinkedList": func() ds.Sequence[int] { return dslist.NewLinkedList[int]() },
	} {
		s.Context(name, func(s *testcase.Spec) {
			stack := let.Var(s, func(t *testcase.T) *dsstack.Stack[int] {
				return dsstack.New(mkSeq())
			})

			s.Test("smoke", func(t *testcase.T) {
				assert.Equal(t, 10, stack.Get(t).Push(10))
				stack.Get(t).Push(20)
				stack.Get(t).Push(30)
				assert.Equal(t, 3, stack.Get(t).Len())

				top, err := stack.Get(t).Peek()
				assert.NoError(t, err)
				assert.Equal(t, 30, top)

				popped, err := stack.Get(t).Pop()
				assert.NoError(t, err)
				assert.Equal(t, 30, popped)

				top, err = stack.Get(t).Peek()
				assert.NoError(t, err)
				assert.Equal(t, 20, top)
			})

			s.When("stack is empty", func(s *testcase.Spec) {
				s.Then("it reports emptiness", func(t *testcase.T) {
					assert.True(t, stack.Get(t).Empty())
					assert.Equal(t, 0, stack.Get(t).Len())
				})

				s.Then("peek fails with empty collection", func(t *testcase.T) {
					_, err := stack.Get(t).Peek()
					assert.ErrorIs(t, ds.ErrEmptyCollection, err)
				})

				s.Then("pop fails with empty collection", func(t *testcase.T) {
					_, err := stack.Get(t).Pop()
					assert.ErrorIs(t, ds.ErrEmptyCollection, err)
				})
			})

			s.Test("values are popped in reverse order", func(t *testcase.T) {
				values := random.Slice(t.Random.IntBetween(1, 12), t.Random.Int)
				for _, v := range values {
					stack.Get(t).Push(v)
				}

				for i := len(values) - 1; 0 <= i; i-- {
					v, err := stack.Get(t).Pop()
					assert.NoError(t, err)
					assert.Equal(t, values[i], v)
				}
				assert.True(t, stack.Get(t).Empty())
			})
		})
	}
}
