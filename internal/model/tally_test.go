package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTallyHasAllSlots(t *testing.T) {
	tally := NewTally()
	assert.Len(t, tally, SlotCount)
	for _, l := range LandingLabels {
		n, ok := tally[l]
		assert.True(t, ok, l)
		assert.Zero(t, n)
	}
	assert.Equal(t, make([]float64, SlotCount), tally.Frequencies())
}

func TestTallyMergeAndFrequencies(t *testing.T) {
	a := NewTally()
	a.Add("a")
	a.Add("e")
	b := NewTally()
	b.Add("e")
	b.Add("i")

	a.Merge(b)

	assert.Equal(t, 4, a.Total())
	assert.Equal(t, []int{1, 0, 0, 0, 2, 0, 0, 0, 1}, a.Counts())
	assert.InDeltaSlice(t, []float64{0.25, 0, 0, 0, 0.5, 0, 0, 0, 0.25}, a.Frequencies(), 1e-12)
}
