package daft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugStruct(t *testing.T) {
	a, b := 1, 2
	l := NewLeaf(&a, &b)

	assert.Equal(t, "PointDiff{X: {Before: 1, After: 2}, Y: 7}",
		DebugStruct("PointDiff").Field("X", l).Field("Y", 7).Finish())
	assert.Equal(t, "PointDiff{X: 1, ..}",
		DebugStruct("PointDiff").Field("X", 1).FinishNonExhaustive())
	assert.Equal(t, "UnitDiff{}", DebugStruct("UnitDiff").Finish())
	assert.Equal(t, "UnitDiff{..}", DebugStruct("UnitDiff").FinishNonExhaustive())
}

func TestDebugTuple(t *testing.T) {
	assert.Equal(t, "PairDiff(1, x)", DebugTuple("PairDiff").Field(1).Field("x").Finish())
	assert.Equal(t, "PairDiff(1, ..)", DebugTuple("PairDiff").Field(1).FinishNonExhaustive())
	assert.Equal(t, "PairDiff()", DebugTuple("PairDiff").Finish())
}
