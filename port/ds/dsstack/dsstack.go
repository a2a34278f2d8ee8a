// Package dsstack provides a LIFO view over a ds.Sequence.
package dsstack

import "go.llib.dev/seqkit/port/ds"

// Stack pushes and pops at the end of the wrapped Sequence.
type Stack[T any] struct {
	seq ds.Sequence[T]
}

func New[T any](seq ds.Sequence[T]) *Stack[T] {
	return &Stack[T]{seq: seq}
}

func (s *Stack[T]) Empty() bool {
	return ds.Empty(s.seq)
}

func (s *Stack[T]) Len() int {
	return s.seq.Len()
}

// Peek returns the top element, or ds.ErrEmptyCollection.
func (s *Stack[T]) Peek() (T, error) {
	return s.seq.GetLast()
}

func (s *Stack[T]) Push(v T) T {
	s.seq.AddLast(v)
	return v
}

func (s *Stack[T]) Pop() (T, error) {
	v, err := s.seq.GetLast()
	if err != nil {
		return v, err
	}
	if err := s.seq.RemoveLast(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
