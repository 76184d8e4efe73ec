package roaring32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankSelectScenario(t *testing.T) {
	rb := FromValues(1, 2, 3, 100, 65537)
	assert.Equal(t, 5, rb.Count())

	min, _ := rb.Min()
	assert.Equal(t, uint32(1), min)
	max, _ := rb.Max()
	assert.Equal(t, uint32(65537), max)

	assert.Equal(t, 4, rb.Rank(100))

	v, ok := rb.Select(3)
	assert.True(t, ok)
	assert.Equal(t, uint32(100), v)
}

func TestRankBeforeFirstElement(t *testing.T) {
	rb := FromValues(10, 20, 30)
	assert.Equal(t, 0, rb.Rank(5))
	assert.Equal(t, 3, rb.Rank(1000))
}

func TestSelectOutOfRange(t *testing.T) {
	rb := FromValues(1, 2, 3)
	_, ok := rb.Select(3)
	assert.False(t, ok)
	_, ok = rb.Select(-1)
	assert.False(t, ok)
}

func TestRankSelectAcrossBitmapContainer(t *testing.T) {
	rb := New()
	for i := 0; i < 10000; i += 2 {
		rb.Set(uint32(i))
	}
	rank := rb.Rank(100)
	assert.Equal(t, 51, rank)

	v, ok := rb.Select(0)
	assert.True(t, ok)
	assert.Equal(t, uint32(0), v)
}
