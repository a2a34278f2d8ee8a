package dsqueue_test

import (
	"testing"

	"go.llib.dev/seqkit/port/ds"
	"go.llib.dev/seqkit/port/ds/dslist"
	"go.llib.dev/seqkit/port/ds/dsqueue"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestQueue(t *testing.T) {
	s := testcase.NewSpec(t)

	for name, mkSeq := range map[string]func() ds.Sequence[int]{
		"ArrayList":  func() ds.Sequence[int] { return dslist.NewArrayList[int]() },
		"LinkedList": func() ds.Sequence[int] { return dslist.NewLinkedList[int]() },
	} {
		s.Context(name, func(s *testcase.Spec) {
			queue := let.Var(s, func(t *testcase.T) *dsqueue.Queue[int] {
				return dsqueue.New(mkSeq())
			})

			s.Test("smoke", func(t *testcase.T) {
				assert.Equal(t, 10, queue.Get(t).Enqueue(10))
				queue.Get(t).Enqueue(20)
				queue.Get(t).Enqueue(30)
				assert.Equal(t, 3, queue.Get(t).Len())

				front, err := queue.Get(t).Peek()
				assert.NoError(t, err)
				assert.Equal(t, 10, front)

				dequeued, err := queue.Get(t).Dequeue()
				assert.NoError(t, err)
				assert.Equal(t, 10, dequeued)

				front, err = queue.Get(t).Peek()
				assert.NoError(t, err)
				assert.Equal(t, 20, front)
			})

			s.When("queue is empty", func(s *testcase.Spec) {
				s.Then("it reports emptiness", func(t *testcase.T) {
					assert.True(t, queue.Get(t).Empty())
					assert.Equal(t, 0, queue.Get(t).Len())
				})

				s.Then("peek fails with empty collection", func(t *testcase.T) {
					_, err := queue.Get(t).Peek()
					assert.ErrorIs(t, ds.ErrEmptyCollection, err)
				})

				s.Then("dequeue fails with empty collection", func(t *testcase.T) {
					_, err := queue.Get(t).Dequeue()
					assert.ErrorIs(t, ds.ErrEmptyCollection, err)
				})
			})

			s.Test("values are dequeued in insertion order", func(t *testcase.T) {
				values := random.Slice(t.Random.IntBetween(1, 12), t.Random.Int)
				for _, v := range values {
					queue.Get(t).Enqueue(v)
				}

				for _, exp := range values {
					v, err := queue.Get(t).Dequeue()
					assert.NoError(t, err)
					assert.Equal(t, exp, v)
				}
				assert.True(t, queue.Get(t).Empty())
			})
		})
	}
}
