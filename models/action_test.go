package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindNames(t *testing.T) {
	want := []string{"fire", "hit", "sink", "unfire", "unsink", "undo"}
	for i, kind := range Kinds() {
		assert.Equal(t, want[i], kind.Name())
	}
}

func TestParseKind(t *testing.T) {
	kind, ok := ParseKind("unsink")
	require.True(t, ok)
	assert.Equal(t, KindUnsink, kind)

	_, ok = ParseKind("launch")
	assert.False(t, ok)
}

func TestOppositePairs(t *testing.T) {
	coord := Coordinate{Row: 2, Column: 3}

	assert.Equal(t, Unfire(coord), Fire(coord).Opposite())
	assert.Equal(t, Fire(coord), Unfire(coord).Opposite())
	// a hit also reverts to untested, so its opposite is unfire
	assert.Equal(t, Unfire(coord), Hit(coord).Opposite())
	assert.Equal(t, Unsink(4), Sink(4).Opposite())
	assert.Equal(t, Sink(4), Unsink(4).Opposite())
}

func TestOppositeCarriesSunkCells(t *testing.T) {
	sink := Sink(3)
	sink.SunkCells = []Coordinate{{Row: 1, Column: 1}, {Row: 1, Column: 2}, {Row: 1, Column: 3}}

	unsink := sink.Opposite()
	assert.Equal(t, KindUnsink, unsink.Kind)
	assert.Equal(t, sink.SunkCells, unsink.SunkCells)
}

func TestOppositeOfUndoPanics(t *testing.T) {
	assert.Panics(t, func() { Undo().Opposite() })
}

func TestExpectedArgCount(t *testing.T) {
	assert.Equal(t, 2, Bare(KindFire).ExpectedArgCount())
	assert.Equal(t, 2, Bare(KindHit).ExpectedArgCount())
	assert.Equal(t, 2, Bare(KindUnfire).ExpectedArgCount())
	assert.Equal(t, 1, Bare(KindSink).ExpectedArgCount())
	assert.Equal(t, 1, Bare(KindUnsink).ExpectedArgCount())
	assert.Equal(t, 0, Bare(KindUndo).ExpectedArgCount())
}

func TestCanInferArgsOnlyFalseForSink(t *testing.T) {
	for _, kind := range Kinds() {
		assert.Equal(t, kind != KindSink, Bare(kind).CanInferArgs(), kind.Name())
	}
}

func TestSuccessMessages(t *testing.T) {
	coord := FromUser(3, 2) // column 3, row 2

	assert.Equal(t, "Fired at [3, 2].", Fire(coord).SuccessMessage())
	assert.Equal(t, "Set hit marker at [3, 2].", Hit(coord).SuccessMessage())
	assert.Equal(t, "Removed fire marker at [3, 2].", Unfire(coord).SuccessMessage())
	assert.Equal(t, "Sunk a ship of length 4.", Sink(4).SuccessMessage())
	assert.Equal(t, "Added a ship of length 4 to the roster.", Unsink(4).SuccessMessage())
}

func TestSuccessMessageContractViolations(t *testing.T) {
	assert.Panics(t, func() { Undo().SuccessMessage() })
	assert.Panics(t, func() { Bare(KindFire).SuccessMessage() })
}

func TestBareResolvedOnlyForUndo(t *testing.T) {
	for _, kind := range Kinds() {
		assert.Equal(t, kind == KindUndo, Bare(kind).Resolved, kind.Name())
	}
}
