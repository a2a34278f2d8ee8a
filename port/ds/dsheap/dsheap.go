// Package dsheap implements a binary min-heap on top of any ds.Sequence.
//
// The heap only talks to the sequence through the ds.Sequence interface,
// so the same algorithm runs on an array backed or a linked backed storage.
package dsheap

import (
	"iter"

	"go.llib.dev/seqkit/port/ds"
	"golang.org/x/exp/constraints"
)

// MinHeap keeps the smallest element, according to its Comparator, at index 0 of the wrapped Sequence.
//
// For every index i >= 1, the element at i is not less than the element at parent(i).
// The MinHeap is the sole owner of the wrapped Sequence, mutating the Sequence directly breaks the heap.
type MinHeap[T any] struct {
	seq ds.Sequence[T]
	cmp ds.Comparator[T]
}

// New wraps the sequence as the storage of a MinHeap.
// When the sequence already holds elements, they are reordered to satisfy the heap property.
func New[T any](seq ds.Sequence[T], cmp ds.Comparator[T]) *MinHeap[T] {
	h := &MinHeap[T]{seq: seq, cmp: cmp}
	h.init()
	return h
}

// NewOrdered creates a MinHeap that orders its elements with the natural ordering of T.
func NewOrdered[T constraints.Ordered](seq ds.Sequence[T]) *MinHeap[T] {
	return New(seq, ds.Ascending[T]())
}

func (h *MinHeap[T]) init() {
	n := h.seq.Len()
	for i := parentOf(n - 1); 0 <= i; i-- {
		h.siftDown(i)
	}
}

func (h *MinHeap[T]) Empty() bool {
	return ds.Empty(h.seq)
}

func (h *MinHeap[T]) Len() int {
	return h.seq.Len()
}

// Insert adds the value and restores the heap property in O(log n) comparisons.
func (h *MinHeap[T]) Insert(v T) {
	h.seq.AddLast(v)
	h.siftUp(h.seq.Len() - 1)
}

// Min returns the smallest element without removing it.
// It reports false when the heap is empty.
func (h *MinHeap[T]) Min() (T, bool) {
	v, err := h.seq.GetFirst()
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// ExtractMin removes and returns the smallest element.
// It returns ds.ErrEmptyCollection when the heap is empty.
func (h *MinHeap[T]) ExtractMin() (T, error) {
	var zero T
	root, err := h.seq.GetFirst()
	if err != nil {
		return zero, err
	}
	last, err := h.seq.GetLast()
	if err != nil {
		return zero, err
	}
	if err := h.seq.Set(0, last); err != nil {
		return zero, err
	}
	if err := h.seq.RemoveLast(); err != nil {
		return zero, err
	}
	h.siftDown(0)
	return root, nil
}

// Drain yields the elements in non-decreasing order while removing them from the heap.
// Stopping the iteration early leaves the remaining elements in the heap.
func (h *MinHeap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for !h.Empty() {
			v, err := h.ExtractMin()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (h *MinHeap[T]) siftUp(index int) {
	for 0 < index {
		parent := parentOf(index)
		if !h.less(index, parent) {
			return
		}
		h.swap(index, parent)
		index = parent
	}
}

// siftDown checks the right child before the left one,
// and the left child only takes over when it is strictly smaller,
// which decides which child wins between equal keys.
func (h *MinHeap[T]) siftDown(index int) {
	size := h.seq.Len()
	for {
		var (
			right    = rightChildOf(index)
			left     = leftChildOf(index)
			smallest = index
		)
		if right < size && h.less(right, smallest) {
			smallest = right
		}
		if left < size && h.less(left, smallest) {
			smallest = left
		}
		if smallest == index {
			return
		}
		h.swap(index, smallest)
		index = smallest
	}
}

// less and swap only receive indexes within [0, Len()),
// an error from the Sequence at that point means a broken backend, and it panics.
func (h *MinHeap[T]) less(i, j int) bool {
	vi, err := h.seq.Get(i)
	if err != nil {
		panic(err)
	}
	vj, err := h.seq.Get(j)
	if err != nil {
		panic(err)
	}
	return h.cmp(vi, vj) < 0
}

func (h *MinHeap[T]) swap(i, j int) {
	if err := ds.Swap(h.seq, i, j); err != nil {
		panic(err)
	}
}

func parentOf(index int) int     { return (index - 1) / 2 }
func leftChildOf(index int) int  { return 2*index + 1 }
func rightChildOf(index int) int { return 2*index + 2 }
