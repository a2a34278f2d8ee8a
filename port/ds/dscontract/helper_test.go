package dscontract

import (
	"testing"

	"go.llib.dev/seqkit/port/ds"
	"go.llib.dev/testcase/assert"
)

type elem struct{ ID int }

func Test_typeName(t *testing.T) {
	assert.Equal(t, "int", typeName[int]())
	assert.Equal(t, "dscontract.elem", typeName[elem]())
	assert.Contains(t, typeName[ds.Sequence[int]](), "Sequence[int]")
}
