// Package dslist implements ds.Sequence with two storage strategies:
// ArrayList on a contiguous buffer and LinkedList on a doubly linked node chain.
//
// The zero value of both types is an empty list ready to use.
package dslist

import (
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/seqkit/port/ds"
)

// DefaultInitialCapacity is the capacity an ArrayList starts with.
const DefaultInitialCapacity = 10

type Config[T any] struct {
	// InitialCapacity is the buffer size of a new ArrayList.
	// LinkedList ignores it.
	InitialCapacity int
	// Equal is the value equality used by IndexOf, LastIndexOf and Exists.
	Equal func(a, b T) bool
}

func (c *Config[T]) Init() {
	c.InitialCapacity = DefaultInitialCapacity
	c.Equal = defaultEqual[T]
}

type Option[T any] option.Option[Config[T]]

// InitialCapacity sets the starting buffer size of an ArrayList.
// Non-positive values are ignored.
func InitialCapacity[T any](n int) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) {
		if 0 < n {
			c.InitialCapacity = n
		}
	})
}

// Equality replaces the default value equality.
func Equality[T any](eq func(a, b T) bool) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) {
		if eq != nil {
			c.Equal = eq
		}
	})
}

func toConfig[T any](opts []Option[T]) Config[T] {
	return option.ToConfig[Config[T]](opts)
}

func defaultEqual[T any](a, b T) bool {
	return reflectkit.Equal(a, b)
}

func checkIndex(index, size int) error {
	if index < 0 || size <= index {
		return ds.ErrIndexOutOfRange.F("index %d is out of range [0, %d)", index, size)
	}
	return nil
}

func checkNotEmpty(size int) error {
	if size == 0 {
		return ds.ErrEmptyCollection
	}
	return nil
}
