package dscontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"
)

func typeName[T any]() string {
	return reflectkit.TypeOf[T]().String()
}

func mkElem[T any](tb testing.TB, fn func(testing.TB) T) T {
	tb.Helper()
	if fn == nil {
		tb.Fatal(fmt.Sprintf("dscontract: MakeElem is required for %s", typeName[T]()))
	}
	return fn(tb)
}

func mkValues[T any](t *testcase.T, fn func(testing.TB) T, minLen, maxLen int) []T {
	return random.Slice(t.Random.IntBetween(minLen, maxLen), func() T {
		return mkElem[T](t, fn)
	}, random.UniqueValues)
}
