package roaring32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddRemoveRange(t *testing.T) {
	rb := New()
	rb.AddRangeClosed(10, 20)
	rb.RemoveRangeClosed(15, 17)

	var got []uint32
	rb.Range(func(v uint32) bool { got = append(got, v); return true })
	assert.Equal(t, []uint32{10, 11, 12, 13, 14, 17, 18, 19}, got)
}

func TestAddRangeAcrossContainers(t *testing.T) {
	rb := New()
	rb.AddRangeClosed(65530, 65540)
	assert.Equal(t, 10, rb.Count())
	assert.True(t, rb.Contains(65530))
	assert.True(t, rb.Contains(65539))
	assert.False(t, rb.Contains(65540))
}

func TestRemoveRangeDropsEmptyContainers(t *testing.T) {
	rb := FromValues(5, 70005)
	rb.RemoveRangeClosed(0, 65536)
	assert.Equal(t, 1, rb.Count())
	assert.True(t, rb.Contains(70005))
}

func TestFlipFullRange(t *testing.T) {
	rb := New()
	out := Flip(rb, 0, 1<<17)
	assert.Equal(t, 1<<17, out.Count())
	assert.True(t, out.Contains(0))
	assert.True(t, out.Contains((1<<17)-1))
	assert.False(t, out.Contains(1<<17))

	// original untouched
	assert.Equal(t, 0, rb.Count())
}

func TestFlipInPlaceTogglesExistingBits(t *testing.T) {
	rb := FromValues(1, 2, 3)
	rb.FlipInPlace(0, 5)
	assert.False(t, rb.Contains(1))
	assert.False(t, rb.Contains(2))
	assert.False(t, rb.Contains(3))
	assert.True(t, rb.Contains(0))
	assert.True(t, rb.Contains(4))
	assert.Equal(t, 2, rb.Count())
}

func TestRunAddRangeMergesAcrossMaxBoundary(t *testing.T) {
	c := newRunContainer()
	c.runAddRange(10, 20)
	c.runAddRange(21, 0xFFFF) // adjacent to the first run and touches 0xFFFF

	assert.Equal(t, []runSpan{{10, 0xFFFF}}, c.runs)
	assert.False(t, c.runHas(9))
	assert.True(t, c.runHas(10))
	assert.True(t, c.runHas(0xFFFF))
}

func TestOrRunRunMergesAcrossMaxBoundary(t *testing.T) {
	a := &container{typ: typeRun, runs: []runSpan{{10, 20}}}
	b := &container{typ: typeRun, runs: []runSpan{{21, 0xFFFF}}}

	out := orRunRun(a, b)
	assert.Equal(t, typeRun, out.typ)
	assert.Equal(t, []runSpan{{10, 0xFFFF}}, out.runs)
	assert.Equal(t, int(0xFFFF-10+1), out.cardinality())
}

func TestContainsRange(t *testing.T) {
	rb := FromRange(10, 20, 1)
	assert.True(t, rb.ContainsRange(10, 20))
	assert.True(t, rb.ContainsRange(12, 15))
	assert.False(t, rb.ContainsRange(10, 21))
	assert.True(t, rb.ContainsRange(5, 5)) // empty range is vacuous
}
