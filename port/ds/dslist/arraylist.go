package dslist

import (
	"iter"

	"go.llib.dev/seqkit/port/ds"
)

// ArrayList is a ds.Sequence backed by a contiguous buffer.
//
// The buffer doubles when an insertion finds it full, and it never shrinks.
// Appending and removing the last element is amortised O(1),
// while inserting or removing anywhere else shifts the elements behind the position.
type ArrayList[T any] struct {
	buf   []T
	size  int
	equal func(a, b T) bool
}

var _ ds.Sequence[any] = (*ArrayList[any])(nil)

func NewArrayList[T any](opts ...Option[T]) *ArrayList[T] {
	c := toConfig(opts)
	return &ArrayList[T]{
		buf:   make([]T, c.InitialCapacity),
		equal: c.Equal,
	}
}

func (l *ArrayList[T]) Len() int {
	return l.size
}

// Cap returns the size of the underlying buffer.
func (l *ArrayList[T]) Cap() int {
	return len(l.buf)
}

func (l *ArrayList[T]) Add(v T) {
	l.AddLast(v)
}

func (l *ArrayList[T]) AddLast(v T) {
	l.ensureCapacity()
	l.buf[l.size] = v
	l.size++
}

func (l *ArrayList[T]) AddFirst(v T) {
	l.insert(0, v)
}

func (l *ArrayList[T]) AddAt(index int, v T) error {
	if err := checkIndex(index, l.size); err != nil {
		return err
	}
	l.insert(index, v)
	return nil
}

func (l *ArrayList[T]) insert(index int, v T) {
	l.ensureCapacity()
	copy(l.buf[index+1:l.size+1], l.buf[index:l.size])
	l.buf[index] = v
	l.size++
}

func (l *ArrayList[T]) ensureCapacity() {
	if l.size < len(l.buf) {
		return
	}
	capacity := len(l.buf) * 2
	if capacity == 0 {
		capacity = DefaultInitialCapacity
	}
	buf := make([]T, capacity)
	copy(buf, l.buf[:l.size])
	l.buf = buf
}

func (l *ArrayList[T]) Set(index int, v T) error {
	if err := checkIndex(index, l.size); err != nil {
		return err
	}
	l.buf[index] = v
	return nil
}

func (l *ArrayList[T]) Get(index int) (T, error) {
	if err := checkIndex(index, l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.buf[index], nil
}

func (l *ArrayList[T]) GetFirst() (T, error) {
	if err := checkNotEmpty(l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.buf[0], nil
}

func (l *ArrayList[T]) GetLast() (T, error) {
	if err := checkNotEmpty(l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.buf[l.size-1], nil
}

func (l *ArrayList[T]) Remove(index int) error {
	if err := checkIndex(index, l.size); err != nil {
		return err
	}
	l.delete(index)
	return nil
}

func (l *ArrayList[T]) RemoveFirst() error {
	if err := checkNotEmpty(l.size); err != nil {
		return err
	}
	l.delete(0)
	return nil
}

func (l *ArrayList[T]) RemoveLast() error {
	if err := checkNotEmpty(l.size); err != nil {
		return err
	}
	l.delete(l.size - 1)
	return nil
}

func (l *ArrayList[T]) delete(index int) {
	copy(l.buf[index:l.size-1], l.buf[index+1:l.size])
	l.size--
	var zero T
	l.buf[l.size] = zero // release the reference held by the vacated slot
}

func (l *ArrayList[T]) IndexOf(v T) int {
	for i := 0; i < l.size; i++ {
		if l.eq(l.buf[i], v) {
			return i
		}
	}
	return ds.NotFound
}

func (l *ArrayList[T]) LastIndexOf(v T) int {
	for i := l.size - 1; 0 <= i; i-- {
		if l.eq(l.buf[i], v) {
			return i
		}
	}
	return ds.NotFound
}

func (l *ArrayList[T]) Exists(v T) bool {
	return l.IndexOf(v) != ds.NotFound
}

func (l *ArrayList[T]) eq(a, b T) bool {
	if l.equal == nil {
		return defaultEqual(a, b)
	}
	return l.equal(a, b)
}

// Sort is a bubble sort that stops after the first pass without swaps.
func (l *ArrayList[T]) Sort(cmp ds.Comparator[T]) {
	for n := l.size; 1 < n; n-- {
		var swapped bool
		for i := 1; i < n; i++ {
			if 0 < cmp(l.buf[i-1], l.buf[i]) {
				l.buf[i-1], l.buf[i] = l.buf[i], l.buf[i-1]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

func (l *ArrayList[T]) ToSlice() []T {
	vs := make([]T, l.size)
	copy(vs, l.buf[:l.size])
	return vs
}

func (l *ArrayList[T]) Clear() {
	clear(l.buf[:l.size])
	l.size = 0
}

func (l *ArrayList[T]) Iterate() ds.Iterator[T] {
	return &arrayIterator[T]{list: l, index: -1, length: l.size}
}

func (l *ArrayList[T]) Values() iter.Seq[T] {
	return ds.IterSeq(l.Iterate())
}

type arrayIterator[T any] struct {
	list   *ArrayList[T]
	index  int
	length int
}

func (i *arrayIterator[T]) Next() bool {
	if i.length <= i.index+1 || i.list.size <= i.index+1 {
		return false
	}
	i.index++
	return true
}

func (i *arrayIterator[T]) Value() T {
	if i.index < 0 || i.list.size <= i.index {
		var zero T
		return zero
	}
	return i.list.buf[i.index]
}
