// Package ds contains the interfaces that express ordered container behaviours,
// such as a Sequence, independently of the storage strategy that backs them.
package ds

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"golang.org/x/exp/constraints"
)

const (
	// ErrIndexOutOfRange is returned by index based operations
	// when the index is outside of [0, Len()).
	ErrIndexOutOfRange errorkit.Error = "ErrIndexOutOfRange"
	// ErrEmptyCollection is returned by operations that access or remove an end element
	// of an empty collection.
	ErrEmptyCollection errorkit.Error = "ErrEmptyCollection"
)

// NotFound is the index reported by IndexOf and LastIndexOf when the value is absent.
const NotFound = -1

// Sequence is an ordered, mutable and finite collection indexed from 0 to Len()-1.
//
// Implementations must behave identically from the caller's point of view,
// regardless of whether they are backed by a contiguous buffer or by linked nodes.
// A Sequence is not safe for concurrent use.
type Sequence[T any] interface {
	Len
	Iterable[T]
	Appendable[T]
	// AddAt inserts the value before the element at the given index.
	// The index must point to an existing element, AddAt(Len(), v) is rejected.
	AddAt(index int, v T) error
	AddFirst(v T)
	AddLast(v T)
	Set(index int, v T) error
	Get(index int) (T, error)
	GetFirst() (T, error)
	GetLast() (T, error)
	// Remove deletes the element at the index and closes the gap,
	// the relative order of the remaining elements is preserved.
	Remove(index int) error
	RemoveFirst() error
	RemoveLast() error
	IndexOf(v T) int
	LastIndexOf(v T) int
	Exists(v T) bool
	// Sort reorders the elements in place into non-decreasing order according to the comparator.
	Sort(cmp Comparator[T])
	// ToSlice returns a copy of the current elements, it shares no memory with the Sequence.
	ToSlice() []T
	Clear()
}

type Len interface {
	Len() int
}

type Appendable[T any] interface {
	// Add appends the value at the end.
	Add(v T)
}

type Iterable[T any] interface {
	// Iterate returns a fresh forward-only cursor that starts at the first element.
	Iterate() Iterator[T]
	Values() iter.Seq[T]
}

// Iterator is a non-owning cursor over a Sequence.
//
// Structurally mutating the Sequence while an Iterator is in use is misuse,
// the Iterator may skip or repeat elements, but it won't read past the captured length.
type Iterator[T any] interface {
	// Next advances the cursor and reports whether a value is available.
	Next() bool
	// Value returns the value the cursor currently points at.
	Value() T
}

// Comparator reports the ordering between a and b.
// It returns a negative number when a < b, zero when a == b and a positive number when a > b.
type Comparator[T any] func(a, b T) int

func Ascending[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

func Descending[T constraints.Ordered]() Comparator[T] {
	return Reverse(Ascending[T]())
}

// Reverse flips the ordering of a Comparator.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int { return cmp(b, a) }
}

// Empty reports whether the collection has no elements.
func Empty(l Len) bool {
	return l.Len() == 0
}

// Collect appends all values to the sequence.
func Collect[T any](seq Appendable[T], vs ...T) {
	for _, v := range vs {
		seq.Add(v)
	}
}

// Swap exchanges the values at index i and j.
func Swap[T any](seq Sequence[T], i, j int) error {
	vi, err := seq.Get(i)
	if err != nil {
		return err
	}
	vj, err := seq.Get(j)
	if err != nil {
		return err
	}
	if err := seq.Set(i, vj); err != nil {
		return err
	}
	return seq.Set(j, vi)
}

// IterSeq adapts an Iterator into a range-over-func sequence.
func IterSeq[T any](i Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i.Next() {
			if !yield(i.Value()) {
				return
			}
		}
	}
}
