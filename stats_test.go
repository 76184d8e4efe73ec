package roaring32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsBreakdownAcrossRepresentations(t *testing.T) {
	rb := New()
	for i := 0; i < 20; i += 2 { // sparse, non-contiguous -> array beats run
		rb.Set(uint32(i))
	}
	for i := 200000; i < 210000; i += 2 { // dense but non-contiguous -> bitmap beats array/run
		rb.Set(uint32(i))
	}
	rb.AddRangeClosed(400000, 410000) // contiguous -> run after Optimize
	rb.Optimize()

	s := rb.Stats()
	assert.Equal(t, rb.Count(), s.Cardinality)
	assert.Equal(t, s.Containers, s.ArrayContainers+s.BitmapContainers+s.RunContainers)
	assert.Greater(t, s.RunContainers, 0)
	assert.Greater(t, s.BitmapContainers, 0)
	assert.Greater(t, s.ArrayContainers, 0)
	assert.Equal(t, s.Cardinality, s.ArrayCardinality+s.BitmapCardinality+s.RunCardinality)
	assert.Greater(t, s.SizeBytes, 0)
}

func TestStatsEmptyBitmap(t *testing.T) {
	s := New().Stats()
	assert.Equal(t, 0, s.Containers)
	assert.Equal(t, 0, s.Cardinality)
	assert.Equal(t, 0, s.SizeBytes)
}

func TestFromSliceMatchesFromValues(t *testing.T) {
	vals := []uint32{5, 1, 70000, 3}
	a := FromSlice(vals)
	b := FromValues(vals...)
	assert.True(t, a.Equals(b))
}
