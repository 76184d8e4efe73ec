package roaring32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForwardIterator(t *testing.T) {
	rb := FromValues(5, 1, 70000, 3)
	it := rb.Iterator()

	var got []uint32
	for it.HasNext() {
		v, ok := it.Next()
		assert.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []uint32{1, 3, 5, 70000}, got)

	_, ok := it.Next()
	assert.False(t, ok)
}

func TestReverseIterator(t *testing.T) {
	rb := FromValues(5, 1, 70000, 3)
	it := rb.ReverseIterator()

	var got []uint32
	for it.HasNext() {
		v, ok := it.Next()
		assert.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []uint32{70000, 5, 3, 1}, got)
}

func TestIteratorAtUint32Max(t *testing.T) {
	rb := FromValues(1, 0xFFFFFFFF)
	it := rb.Iterator()

	v1, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, uint32(1), v1)

	v2, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, uint32(0xFFFFFFFF), v2)

	// must not overflow back to 0 and must report done
	assert.False(t, it.HasNext())
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestIteratorEmptyBitmap(t *testing.T) {
	rb := New()
	it := rb.Iterator()
	assert.False(t, it.HasNext())
	_, ok := it.Next()
	assert.False(t, ok)
}
