// Package dsqueue provides a FIFO view over a ds.Sequence.
package dsqueue

import "go.llib.dev/seqkit/port/ds"

// Queue enqueues at the end and dequeues from the front of the wrapped Sequence.
// A LinkedList backed Queue dequeues in O(1), an ArrayList backed one shifts on every Dequeue.
type Queue[T any] struct {
	seq ds.Sequence[T]
}

func New[T any](seq ds.Sequence[T]) *Queue[T] {
	return &Queue[T]{seq: seq}
}

func (q *Queue[T]) Empty() bool {
	return ds.Empty(q.seq)
}

func (q *Queue[T]) Len() int {
	return q.seq.Len()
}

// Peek returns the front element, or ds.ErrEmptyCollection.
func (q *Queue[T]) Peek() (T, error) {
	return q.seq.GetFirst()
}

func (q *Queue[T]) Enqueue(v T) T {
	q.seq.AddLast(v)
	return v
}

func (q *Queue[T]) Dequeue() (T, error) {
	v, err := q.seq.GetFirst()
	if err != nil {
		return v, err
	}
	if err := q.seq.RemoveFirst(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
