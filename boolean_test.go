package roaring32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooleanOpsScenario(t *testing.T) {
	a := FromRange(0, 10000, 1)
	b := FromRange(5000, 15000, 1)

	or := Or(a, b)
	assert.Equal(t, 15000, or.Count())

	and := And(a, b)
	assert.Equal(t, 5000, and.Count())

	xor := Xor(a, b)
	assert.Equal(t, 10000, xor.Count())

	andNot := AndNot(a, b)
	assert.Equal(t, 5000, andNot.Count())
}

func TestBooleanOpsAgreeWithReferenceModel(t *testing.T) {
	a := FromValues(1, 2, 3, 100, 70000, 70001)
	b := FromValues(2, 3, 4, 70000, 70002)

	ref := func(pred func(inA, inB bool) bool) map[uint32]struct{} {
		out := map[uint32]struct{}{}
		seen := map[uint32]struct{}{}
		a.Range(func(v uint32) bool { seen[v] = struct{}{}; return true })
		b.Range(func(v uint32) bool { seen[v] = struct{}{}; return true })
		for v := range seen {
			if pred(a.Contains(v), b.Contains(v)) {
				out[v] = struct{}{}
			}
		}
		return out
	}

	assertSameSet(t, And(a, b), ref(func(x, y bool) bool { return x && y }))
	assertSameSet(t, Or(a, b), ref(func(x, y bool) bool { return x || y }))
	assertSameSet(t, Xor(a, b), ref(func(x, y bool) bool { return x != y }))
	assertSameSet(t, AndNot(a, b), ref(func(x, y bool) bool { return x && !y }))
}

func assertSameSet(t *testing.T, rb *Bitmap, want map[uint32]struct{}) {
	t.Helper()
	assert.Equal(t, len(want), rb.Count())
	for v := range want {
		assert.True(t, rb.Contains(v), "expected %d in result", v)
	}
}

func TestInPlaceOps(t *testing.T) {
	a := FromValues(1, 2, 3)
	b := FromValues(2, 3, 4)

	a.AndInPlace(b)
	assert.Equal(t, 2, a.Count())
	assert.True(t, a.Contains(2))
	assert.True(t, a.Contains(3))

	a = FromValues(1, 2, 3)
	a.OrInPlace(b)
	assert.Equal(t, 4, a.Count())

	a = FromValues(1, 2, 3)
	err := a.XorInPlace(b)
	assert.NoError(t, err)
	assert.Equal(t, 2, a.Count())
	assert.True(t, a.Contains(1))
	assert.True(t, a.Contains(4))

	a = FromValues(1, 2, 3)
	err = a.AndNotInPlace(b)
	assert.NoError(t, err)
	assert.Equal(t, 1, a.Count())
	assert.True(t, a.Contains(1))
}

func TestSameOperandRejected(t *testing.T) {
	a := FromValues(1, 2, 3)
	assert.ErrorIs(t, a.XorInPlace(a), ErrSameOperand)
	assert.ErrorIs(t, a.AndNotInPlace(a), ErrSameOperand)
}

func TestManyWayOps(t *testing.T) {
	a := FromValues(1, 2, 3)
	b := FromValues(3, 4, 5)
	c := FromValues(5, 6, 7)

	or := OrMany(a, b, c)
	assert.Equal(t, 7, or.Count())

	xor := XorMany(a, b, c)
	// 1,2 only-in-a; 4 only-in-b; 6,7 only-in-c; 3 and 5 appear in two sets each and cancel
	assert.Equal(t, 5, xor.Count())
	assert.True(t, xor.Contains(1))
	assert.False(t, xor.Contains(3))

	and := AndMany(a, b, c)
	assert.Equal(t, 0, and.Count())
}

func TestSubsetAndIntersect(t *testing.T) {
	a := FromValues(1, 2)
	b := FromValues(1, 2, 3)

	assert.True(t, IsSubset(a, b))
	assert.False(t, IsSubset(b, a))
	assert.True(t, IsStrictSubset(a, b))
	assert.False(t, IsStrictSubset(a, a))
	assert.True(t, IntersectTest(a, b))
	assert.False(t, IntersectTest(FromValues(100), b))
}

func TestCardinalityHelpers(t *testing.T) {
	a := FromRange(0, 10000, 1)
	b := FromRange(5000, 15000, 1)

	assert.Equal(t, 5000, AndCardinality(a, b))
	assert.Equal(t, 15000, OrCardinality(a, b))
	assert.Equal(t, 10000, XorCardinality(a, b))
	assert.Equal(t, 5000, AndNotCardinality(a, b))

	j := Jaccard(a, b)
	assert.InDelta(t, 5000.0/15000.0, j, 1e-9)
	assert.Equal(t, 0.0, Jaccard(New(), New()))
}
