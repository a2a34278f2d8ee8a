package dslist

import (
	"iter"

	"go.llib.dev/seqkit/port/ds"
)

// LinkedList is a ds.Sequence backed by a doubly linked chain of nodes.
//
// Operations on either end are O(1).
// Index based operations walk the chain from whichever end is closer to the index.
type LinkedList[T any] struct {
	head   *llNode[T]
	tail   *llNode[T]
	length int
	equal  func(a, b T) bool
}

var _ ds.Sequence[any] = (*LinkedList[any])(nil)

// llNode owns its successor through next,
// prev is only a back reference for walking and relinking.
type llNode[T any] struct {
	data T
	prev *llNode[T]
	next *llNode[T]
}

func NewLinkedList[T any](opts ...Option[T]) *LinkedList[T] {
	c := toConfig(opts)
	return &LinkedList[T]{equal: c.Equal}
}

func (ll *LinkedList[T]) Len() int {
	return ll.length
}

func (ll *LinkedList[T]) Add(v T) {
	ll.AddLast(v)
}

func (ll *LinkedList[T]) AddLast(v T) {
	newNode := &llNode[T]{data: v}
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		prevTail := ll.tail
		prevTail.next = newNode
		newNode.prev = prevTail
		ll.tail = newNode
	}
	ll.length++
}

func (ll *LinkedList[T]) AddFirst(v T) {
	var (
		prevHead = ll.head
		newHead  = &llNode[T]{
			data: v,
			next: prevHead,
		}
	)
	if prevHead != nil {
		prevHead.prev = newHead
	}
	ll.head = newHead
	if ll.tail == nil {
		ll.tail = newHead
	}
	ll.length++
}

func (ll *LinkedList[T]) AddAt(index int, v T) error {
	if err := checkIndex(index, ll.length); err != nil {
		return err
	}
	if index == 0 {
		ll.AddFirst(v)
		return nil
	}
	at := ll.nodeAt(index)
	newNode := &llNode[T]{
		data: v,
		prev: at.prev,
		next: at,
	}
	at.prev.next = newNode
	at.prev = newNode
	ll.length++
	return nil
}

func (ll *LinkedList[T]) Set(index int, v T) error {
	if err := checkIndex(index, ll.length); err != nil {
		return err
	}
	ll.nodeAt(index).data = v
	return nil
}

func (ll *LinkedList[T]) Get(index int) (T, error) {
	if err := checkIndex(index, ll.length); err != nil {
		var zero T
		return zero, err
	}
	return ll.nodeAt(index).data, nil
}

func (ll *LinkedList[T]) GetFirst() (T, error) {
	if ll.head == nil {
		var zero T
		return zero, ds.ErrEmptyCollection
	}
	return ll.head.data, nil
}

func (ll *LinkedList[T]) GetLast() (T, error) {
	if ll.tail == nil {
		var zero T
		return zero, ds.ErrEmptyCollection
	}
	return ll.tail.data, nil
}

func (ll *LinkedList[T]) Remove(index int) error {
	if err := checkIndex(index, ll.length); err != nil {
		return err
	}
	ll.unlink(ll.nodeAt(index))
	return nil
}

func (ll *LinkedList[T]) RemoveFirst() error {
	if ll.head == nil {
		return ds.ErrEmptyCollection
	}
	ll.unlink(ll.head)
	return nil
}

func (ll *LinkedList[T]) RemoveLast() error {
	if ll.tail == nil {
		return ds.ErrEmptyCollection
	}
	ll.unlink(ll.tail)
	return nil
}

func (ll *LinkedList[T]) unlink(n *llNode[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		ll.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		ll.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	ll.length--
}

// nodeAt expects a valid index.
func (ll *LinkedList[T]) nodeAt(index int) *llNode[T] {
	if index < ll.length/2 {
		current := ll.head
		for i := 0; i < index; i++ {
			current = current.next
		}
		return current
	}
	current := ll.tail
	for i := ll.length - 1; index < i; i-- {
		current = current.prev
	}
	return current
}

func (ll *LinkedList[T]) IndexOf(v T) int {
	var index int
	for current := ll.head; current != nil; current = current.next {
		if ll.eq(current.data, v) {
			return index
		}
		index++
	}
	return ds.NotFound
}

func (ll *LinkedList[T]) LastIndexOf(v T) int {
	index := ll.length - 1
	for current := ll.tail; current != nil; current = current.prev {
		if ll.eq(current.data, v) {
			return index
		}
		index--
	}
	return ds.NotFound
}

func (ll *LinkedList[T]) Exists(v T) bool {
	return ll.IndexOf(v) != ds.NotFound
}

func (ll *LinkedList[T]) eq(a, b T) bool {
	if ll.equal == nil {
		return defaultEqual(a, b)
	}
	return ll.equal(a, b)
}

// Sort is a bubble sort that swaps node data and leaves the links untouched.
func (ll *LinkedList[T]) Sort(cmp ds.Comparator[T]) {
	for swapped := true; swapped; {
		swapped = false
		for current := ll.head; current != nil && current.next != nil; current = current.next {
			if 0 < cmp(current.data, current.next.data) {
				current.data, current.next.data = current.next.data, current.data
				swapped = true
			}
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	vs := make([]T, 0, ll.length)
	for current := ll.head; current != nil; current = current.next {
		vs = append(vs, current.data)
	}
	return vs
}

func (ll *LinkedList[T]) Clear() {
	ll.head = nil
	ll.tail = nil
	ll.length = 0
}

func (ll *LinkedList[T]) Iterate() ds.Iterator[T] {
	return &linkedIterator[T]{next: ll.head, remaining: ll.length}
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return ds.IterSeq(ll.Iterate())
}

type linkedIterator[T any] struct {
	current   *llNode[T]
	next      *llNode[T]
	remaining int
}

func (i *linkedIterator[T]) Next() bool {
	if i.next == nil || i.remaining <= 0 {
		return false
	}
	i.current = i.next
	i.next = i.current.next
	i.remaining--
	return true
}

func (i *linkedIterator[T]) Value() T {
	if i.current == nil {
		var zero T
		return zero
	}
	return i.current.data
}
