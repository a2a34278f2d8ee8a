package ds_test

import (
	"testing"

	"go.llib.dev/seqkit/port/ds"
	"go.llib.dev/seqkit/port/ds/dslist"
	"go.llib.dev/testcase/assert"
)

func TestComparator(t *testing.T) {
	asc := ds.Ascending[string]()
	assert.True(t, asc("a", "b") < 0)
	assert.True(t, asc("b", "a") > 0)
	assert.Equal(t, 0, asc("a", "a"))

	desc := ds.Descending[float64]()
	assert.True(t, desc(1.5, 2.5) > 0)
	assert.Equal(t, 0, desc(1.5, 1.5))

	rev := ds.Reverse(ds.Reverse(ds.Ascending[int]()))
	assert.True(t, rev(1, 2) < 0)
}

func TestSwap(t *testing.T) {
	seq := dslist.NewLinkedList[string]()
	ds.Collect[string](seq, "a", "b", "c")

	assert.NoError(t, ds.Swap[string](seq, 0, 2))
	assert.Equal(t, []string{"c", "b", "a"}, seq.ToSlice())

	assert.ErrorIs(t, ds.ErrIndexOutOfRange, ds.Swap[string](seq, 0, 3))
	assert.Equal(t, []string{"c", "b", "a"}, seq.ToSlice())
}

func TestEmpty(t *testing.T) {
	seq := dslist.NewArrayList[int]()
	assert.True(t, ds.Empty(seq))
	seq.Add(1)
	assert.False(t, ds.Empty(seq))
}
