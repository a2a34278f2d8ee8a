// Package dscontract holds the behavioural contracts of the ds interfaces.
// Every implementation of a ds interface is expected to pass them.
package dscontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/seqkit/port/ds"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

type SequenceConfig[T any] struct {
	// MakeElem creates a random element for the Sequence.
	MakeElem func(tb testing.TB) T
	// Compare is used to check the ordering after Sort.
	// When it is nil, Sort is not tested.
	Compare ds.Comparator[T]
}

func (sc SequenceConfig[T]) Configure(t *SequenceConfig[T]) {
	if sc.MakeElem != nil {
		t.MakeElem = sc.MakeElem
	}
	if sc.Compare != nil {
		t.Compare = sc.Compare
	}
}

type SequenceOption[T any] option.Option[SequenceConfig[T]]

// Sequence returns the contract of ds.Sequence.
// The Make function must return an empty Sequence.
func Sequence[T any](mk contract.Make[ds.Sequence[T]], opts ...SequenceOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[SequenceConfig[T]](opts)

	seq := let.Var(s, func(t *testcase.T) ds.Sequence[T] {
		return mk(t)
	})

	Iterable[T](func(tb testing.TB) IterableSubject[T] {
		return mk(tb)
	}, IterableConfig[T]{MakeElem: c.MakeElem}).Spec(s)

	s.Test("smoke", func(t *testcase.T) {
		var (
			subject = mk(t)
			values  = mkValues(t, c.MakeElem, 3, 7)
		)
		assert.Equal(t, 0, subject.Len())

		for i, v := range values {
			subject.Add(v)
			assert.Equal(t, i+1, subject.Len())
		}
		for i, exp := range values {
			got, err := subject.Get(i)
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		}
		assert.Equal(t, values, subject.ToSlice())
	})

	whenSequenceIsEmpty := func(s *testcase.Spec, then func(s *testcase.Spec)) {
		s.When("sequence is empty", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				assert.Equal(t, 0, seq.Get(t).Len(), `The "Make" sequence should be empty but isn't, please check the setup.`)
			})

			then(s)
		})
	}

	values := let.Var(s, func(t *testcase.T) []T {
		return mkValues(t, c.MakeElem, 3, 7)
	})

	whenSequenceHasValues := func(s *testcase.Spec, then func(s *testcase.Spec)) {
		s.When("sequence contains values", func(s *testcase.Spec) {
			seq.Let(s, func(t *testcase.T) ds.Sequence[T] {
				subject := seq.Super(t)
				ds.Collect[T](subject, values.Get(t)...)
				return subject
			})

			then(s)
		})
	}

	s.Describe("#Add", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return mkElem[T](t, c.MakeElem)
		})
		act := let.Act0(func(t *testcase.T) {
			seq.Get(t).Add(value.Get(t))
		})

		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			s.Then("the value becomes the only element", func(t *testcase.T) {
				act(t)

				assert.Equal(t, []T{value.Get(t)}, seq.Get(t).ToSlice())
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.Then("the value is appended at the end", func(t *testcase.T) {
				act(t)

				exp := append(append([]T{}, values.Get(t)...), value.Get(t))
				assert.Equal(t, exp, seq.Get(t).ToSlice())
			})

			s.Then("length is increased by one", func(t *testcase.T) {
				act(t)

				assert.Equal(t, len(values.Get(t))+1, seq.Get(t).Len())
			})
		})
	})

	s.Describe("#AddLast", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return mkElem[T](t, c.MakeElem)
		})
		act := let.Act0(func(t *testcase.T) {
			seq.Get(t).AddLast(value.Get(t))
		})

		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			s.Then("the value becomes both the first and the last element", func(t *testcase.T) {
				act(t)

				first, err := seq.Get(t).GetFirst()
				assert.NoError(t, err)
				assert.Equal(t, value.Get(t), first)

				last, err := seq.Get(t).GetLast()
				assert.NoError(t, err)
				assert.Equal(t, value.Get(t), last)
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.Then("the value is appended at the end", func(t *testcase.T) {
				act(t)

				exp := append(append([]T{}, values.Get(t)...), value.Get(t))
				assert.Equal(t, exp, seq.Get(t).ToSlice())
			})
		})
	})

	s.Describe("#AddFirst", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return mkElem[T](t, c.MakeElem)
		})
		act := let.Act0(func(t *testcase.T) {
			seq.Get(t).AddFirst(value.Get(t))
		})

		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			s.Then("the value becomes both the first and the last element", func(t *testcase.T) {
				act(t)

				first, err := seq.Get(t).GetFirst()
				assert.NoError(t, err)
				assert.Equal(t, value.Get(t), first)

				last, err := seq.Get(t).GetLast()
				assert.NoError(t, err)
				assert.Equal(t, value.Get(t), last)
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.Then("the value is prepended and the rest keeps its order", func(t *testcase.T) {
				act(t)

				exp := append([]T{value.Get(t)}, values.Get(t)...)
				assert.Equal(t, exp, seq.Get(t).ToSlice())
			})
		})

		s.Test("prepending many values one by one reverses their order", func(t *testcase.T) {
			var (
				subject = seq.Get(t)
				vs      = mkValues(t, c.MakeElem, 3, 7)
			)
			for _, v := range vs {
				subject.AddFirst(v)
			}
			got := subject.ToSlice()
			assert.Equal(t, len(vs), len(got))
			for i, v := range vs {
				assert.Equal(t, v, got[len(got)-1-i])
			}
		})
	})

	s.Describe("#AddAt", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return mkElem[T](t, c.MakeElem)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).AddAt(index.Get(t), value.Get(t))
		})

		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			s.And("index is zero", func(s *testcase.Spec) {
				index.LetValue(s, 0)

				s.Then("it is rejected as there is no element to insert before", func(t *testcase.T) {
					assert.ErrorIs(t, ds.ErrIndexOutOfRange, act(t))
					assert.Equal(t, 0, seq.Get(t).Len())
				})
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.And("index points to an existing element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the value is inserted before the element at the index", func(t *testcase.T) {
					assert.NoError(t, act(t))

					var exp []T
					exp = append(exp, values.Get(t)[:index.Get(t)]...)
					exp = append(exp, value.Get(t))
					exp = append(exp, values.Get(t)[index.Get(t):]...)
					assert.Equal(t, exp, seq.Get(t).ToSlice())
				})

				s.Then("the value is available at the index", func(t *testcase.T) {
					assert.NoError(t, act(t))

					got, err := seq.Get(t).Get(index.Get(t))
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), got)
				})
			})

			s.And("index is equal to the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("it is rejected, appending is done with Add", func(t *testcase.T) {
					assert.ErrorIs(t, ds.ErrIndexOutOfRange, act(t))
					assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return -1 * t.Random.IntBetween(1, 42)
				})

				s.Then("it fails with index out of range", func(t *testcase.T) {
					assert.ErrorIs(t, ds.ErrIndexOutOfRange, act(t))
					assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
				})
			})
		})
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (T, error) {
			return seq.Get(t).Get(index.Get(t))
		})

		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it fails with index out of range", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, ds.ErrIndexOutOfRange, err)
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.And("index points to an existing element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the element at the index is returned", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})
			})

			s.And("index is the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("it fails with index out of range", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, ds.ErrIndexOutOfRange, err)
				})
			})

			s.And("index is -1", func(s *testcase.Spec) {
				index.LetValue(s, -1)

				s.Then("it fails with index out of range", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, ds.ErrIndexOutOfRange, err)
				})
			})
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return mkElem[T](t, c.MakeElem)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Set(index.Get(t), value.Get(t))
		})

		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it fails with index out of range", func(t *testcase.T) {
				assert.ErrorIs(t, ds.ErrIndexOutOfRange, act(t))
				assert.Equal(t, 0, seq.Get(t).Len())
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.And("index points to an existing element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the new value is set for the given index", func(t *testcase.T) {
					assert.NoError(t, act(t))

					got, err := seq.Get(t).Get(index.Get(t))
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), got)
				})

				s.Then("the length remains the same", func(t *testcase.T) {
					assert.NoError(t, act(t))

					assert.Equal(t, len(values.Get(t)), seq.Get(t).Len())
				})

				s.Then("apart from the changed value, everything else remains the original one", func(t *testcase.T) {
					assert.NoError(t, act(t))

					for i, exp := range values.Get(t) {
						got, err := seq.Get(t).Get(i)
						assert.NoError(t, err)
						if i == index.Get(t) {
							assert.Equal(t, value.Get(t), got)
						} else {
							assert.Equal(t, exp, got)
						}
					}
				})
			})

			s.And("index is out of range", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("it fails and nothing changes", func(t *testcase.T) {
					assert.ErrorIs(t, ds.ErrIndexOutOfRange, act(t))
					assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
				})
			})
		})
	})

	s.Describe("#GetFirst", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (T, error) {
			return seq.Get(t).GetFirst()
		})

		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			s.Then("it fails with empty collection", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, ds.ErrEmptyCollection, err)
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.Then("the first element is returned", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[0], got)
			})
		})
	})

	s.Describe("#GetLast", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (T, error) {
			return seq.Get(t).GetLast()
		})

		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			s.Then("it fails with empty collection", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, ds.ErrEmptyCollection, err)
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.Then("the last element is returned", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[len(values.Get(t))-1], got)
			})
		})
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Remove(index.Get(t))
		})

		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it fails with index out of range", func(t *testcase.T) {
				assert.ErrorIs(t, ds.ErrIndexOutOfRange, act(t))
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.And("index points to an existing element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("length is reduced by one", func(t *testcase.T) {
					assert.NoError(t, act(t))

					assert.Equal(t, len(values.Get(t))-1, seq.Get(t).Len())
				})

				s.Then("the relative order of the remaining elements is preserved", func(t *testcase.T) {
					assert.NoError(t, act(t))

					var exp []T
					exp = append(exp, values.Get(t)[:index.Get(t)]...)
					exp = append(exp, values.Get(t)[index.Get(t)+1:]...)
					assert.Equal(t, exp, seq.Get(t).ToSlice())
				})
			})

			s.And("index is out of range", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					if t.Random.Bool() {
						return -1
					}
					return len(values.Get(t))
				})

				s.Then("it fails and nothing changes", func(t *testcase.T) {
					assert.ErrorIs(t, ds.ErrIndexOutOfRange, act(t))
					assert.Equal(t, values.Get(t), seq.Get(t).ToSlice())
				})
			})
		})
	})

	s.Describe("#RemoveFirst", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).RemoveFirst()
		})

		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			s.Then("it fails with empty collection", func(t *testcase.T) {
				assert.ErrorIs(t, ds.ErrEmptyCollection, act(t))
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.Then("the first element is removed", func(t *testcase.T) {
				assert.NoError(t, act(t))

				assert.Equal(t, values.Get(t)[1:], seq.Get(t).ToSlice())
			})

			s.Then("removing every element leaves an empty sequence", func(t *testcase.T) {
				for range values.Get(t) {
					assert.NoError(t, act(t))
				}
				assert.Equal(t, 0, seq.Get(t).Len())
				assert.ErrorIs(t, ds.ErrEmptyCollection, act(t))

				_, err := seq.Get(t).GetLast()
				assert.ErrorIs(t, ds.ErrEmptyCollection, err)
			})
		})
	})

	s.Describe("#RemoveLast", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).RemoveLast()
		})

		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			s.Then("it fails with empty collection", func(t *testcase.T) {
				assert.ErrorIs(t, ds.ErrEmptyCollection, act(t))
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.Then("the last element is removed", func(t *testcase.T) {
				assert.NoError(t, act(t))

				vs := values.Get(t)
				assert.Equal(t, vs[:len(vs)-1], seq.Get(t).ToSlice())
			})

			s.Then("removing every element leaves an empty sequence", func(t *testcase.T) {
				for range values.Get(t) {
					assert.NoError(t, act(t))
				}
				assert.Equal(t, 0, seq.Get(t).Len())
				assert.ErrorIs(t, ds.ErrEmptyCollection, act(t))

				_, err := seq.Get(t).GetFirst()
				assert.ErrorIs(t, ds.ErrEmptyCollection, err)
			})
		})
	})

	s.Describe("#IndexOf", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return mkElem[T](t, c.MakeElem)
		})
		act := let.Act(func(t *testcase.T) int {
			return seq.Get(t).IndexOf(value.Get(t))
		})

		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			s.Then("the value is reported as not found", func(t *testcase.T) {
				assert.Equal(t, ds.NotFound, act(t))
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.And("the value is present multiple times", func(s *testcase.Spec) {
				index := let.Var(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})
				value.Let(s, func(t *testcase.T) T {
					return values.Get(t)[index.Get(t)]
				})
				s.Before(func(t *testcase.T) {
					seq.Get(t).Add(value.Get(t))
				})

				s.Then("the index of the first occurrence is returned", func(t *testcase.T) {
					assert.Equal(t, index.Get(t), act(t))
				})

				s.Then("LastIndexOf returns the index of the last occurrence", func(t *testcase.T) {
					assert.Equal(t, len(values.Get(t)), seq.Get(t).LastIndexOf(value.Get(t)))
				})

				s.Then("the value exists", func(t *testcase.T) {
					assert.True(t, seq.Get(t).Exists(value.Get(t)))
				})
			})

			s.And("the value is absent", func(s *testcase.Spec) {
				value.Let(s, func(t *testcase.T) T {
					return mkAbsent(t, c.MakeElem, values.Get(t))
				})

				s.Then("the value is reported as not found", func(t *testcase.T) {
					assert.Equal(t, ds.NotFound, act(t))
					assert.Equal(t, ds.NotFound, seq.Get(t).LastIndexOf(value.Get(t)))
					assert.False(t, seq.Get(t).Exists(value.Get(t)))
				})
			})
		})
	})

	s.Describe("#LastIndexOf", func(s *testcase.Spec) {
		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			s.Then("it reports not found instead of failing", func(t *testcase.T) {
				assert.Equal(t, ds.NotFound, seq.Get(t).LastIndexOf(mkElem[T](t, c.MakeElem)))
				assert.False(t, seq.Get(t).Exists(mkElem[T](t, c.MakeElem)))
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.Then("for unique values it is the same as IndexOf", func(t *testcase.T) {
				for i, v := range values.Get(t) {
					assert.Equal(t, i, seq.Get(t).LastIndexOf(v))
					assert.Equal(t, i, seq.Get(t).IndexOf(v))
				}
			})
		})
	})

	if c.Compare != nil {
		s.Describe("#Sort", func(s *testcase.Spec) {
			act := let.Act0(func(t *testcase.T) {
				seq.Get(t).Sort(c.Compare)
			})

			whenSequenceIsEmpty(s, func(s *testcase.Spec) {
				s.Then("it remains empty", func(t *testcase.T) {
					act(t)

					assert.Equal(t, 0, seq.Get(t).Len())
				})
			})

			whenSequenceHasValues(s, func(s *testcase.Spec) {
				s.Then("the elements are in non-decreasing order", func(t *testcase.T) {
					act(t)

					got := seq.Get(t).ToSlice()
					for i := 1; i < len(got); i++ {
						assert.True(t, c.Compare(got[i-1], got[i]) <= 0,
							assert.MessageF("expected %v to not be greater than %v", got[i-1], got[i]))
					}
				})

				s.Then("no element is lost or added", func(t *testcase.T) {
					act(t)

					assert.ContainsExactly(t, values.Get(t), seq.Get(t).ToSlice())
				})

				s.Then("sorting an already sorted sequence changes nothing", func(t *testcase.T) {
					act(t)
					sorted := seq.Get(t).ToSlice()
					act(t)

					assert.Equal(t, sorted, seq.Get(t).ToSlice())
				})
			})
		})
	}

	s.Describe("#ToSlice", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) []T {
			return seq.Get(t).ToSlice()
		})

		whenSequenceIsEmpty(s, func(s *testcase.Spec) {
			s.Then("an empty slice is returned", func(t *testcase.T) {
				assert.Equal(t, 0, len(act(t)))
			})
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.Then("the elements are returned in order", func(t *testcase.T) {
				assert.Equal(t, values.Get(t), act(t))
			})

			s.Then("the returned slice is an independent copy", func(t *testcase.T) {
				vs := act(t)
				vs[0] = mkAbsent(t, c.MakeElem, values.Get(t))

				got, err := seq.Get(t).GetFirst()
				assert.NoError(t, err)
				assert.Equal(t, values.Get(t)[0], got)
			})

			s.Then("re-adding the elements into a fresh sequence reproduces the original order", func(t *testcase.T) {
				fresh := mk(t)
				ds.Collect[T](fresh, act(t)...)

				assert.Equal(t, seq.Get(t).ToSlice(), fresh.ToSlice())
			})
		})
	})

	s.Describe("#Clear", func(s *testcase.Spec) {
		act := let.Act0(func(t *testcase.T) {
			seq.Get(t).Clear()
		})

		whenSequenceHasValues(s, func(s *testcase.Spec) {
			s.Then("all elements are removed", func(t *testcase.T) {
				act(t)

				assert.Equal(t, 0, seq.Get(t).Len())
				assert.Equal(t, 0, len(seq.Get(t).ToSlice()))
				_, err := seq.Get(t).GetFirst()
				assert.ErrorIs(t, ds.ErrEmptyCollection, err)
			})

			s.Then("the sequence is usable afterwards", func(t *testcase.T) {
				act(t)

				v := mkElem[T](t, c.MakeElem)
				seq.Get(t).Add(v)
				assert.Equal(t, []T{v}, seq.Get(t).ToSlice())
			})
		})
	})

	return s.AsSuite(fmt.Sprintf("Sequence[%s]", typeName[T]()))
}

// mkAbsent makes an element that is not part of the given values.
func mkAbsent[T any](t *testcase.T, fn func(testing.TB) T, vs []T) T {
	t.Helper()
	return random.Unique(func() T { return mkElem[T](t, fn) }, vs...)
}
