package roaring32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnion16(t *testing.T) {
	a := []uint16{1, 3, 5, 7}
	b := []uint16{2, 3, 6, 7, 8}
	assert.Equal(t, []uint16{1, 2, 3, 5, 6, 7, 8}, union16(a, b))
}

func TestIntersect16(t *testing.T) {
	a := []uint16{1, 3, 5, 7, 9}
	b := []uint16{2, 3, 6, 7, 8}
	assert.Equal(t, []uint16{3, 7}, intersect16(a, b))
	assert.Equal(t, 2, intersectCount(a, b))
}

func TestDifference16(t *testing.T) {
	a := []uint16{1, 2, 3, 4}
	b := []uint16{2, 4}
	assert.Equal(t, []uint16{1, 3}, difference16(a, b))
}

func TestSymmetricDifference16(t *testing.T) {
	a := []uint16{1, 2, 3}
	b := []uint16{2, 3, 4}
	assert.Equal(t, []uint16{1, 4}, symmetricDifference16(a, b))
}

func TestInsertRemove16(t *testing.T) {
	a := []uint16{1, 3, 5}
	a, ok := insert16(a, 4)
	assert.True(t, ok)
	assert.Equal(t, []uint16{1, 3, 4, 5}, a)

	a, ok = insert16(a, 4)
	assert.False(t, ok)

	a, ok = remove16(a, 3)
	assert.True(t, ok)
	assert.Equal(t, []uint16{1, 4, 5}, a)
}

func TestLowerBound16(t *testing.T) {
	a := []uint16{1, 3, 5, 7}
	assert.Equal(t, 0, lowerBound16(a, 0))
	assert.Equal(t, 1, lowerBound16(a, 2))
	assert.Equal(t, 4, lowerBound16(a, 8))
}
