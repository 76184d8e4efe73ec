package roaring32

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainerArraySetRemoveContains(t *testing.T) {
	c := newArrayContainer()
	assert.True(t, c.set(5))
	assert.False(t, c.set(5))
	assert.True(t, c.set(1))
	assert.True(t, c.set(3))
	assert.Equal(t, []uint16{1, 3, 5}, c.arr)

	assert.True(t, c.contains(3))
	assert.False(t, c.contains(4))

	assert.True(t, c.remove(3))
	assert.False(t, c.remove(3))
	assert.Equal(t, []uint16{1, 5}, c.arr)
}

func TestContainerConvertsToBitmapAboveThreshold(t *testing.T) {
	c := newArrayContainer()
	for i := 0; i < maxArraySize+1; i++ {
		c.set(uint16(i))
	}
	convertToCanonical(c)
	assert.Equal(t, typeBitmap, c.typ)
	assert.Equal(t, maxArraySize+1, c.cardinality())
}

func TestContainerConvertsBackToArray(t *testing.T) {
	c := newBitmapContainer()
	for i := 0; i < 10; i++ {
		c.bmpSet(uint16(i))
	}
	convertToCanonical(c)
	assert.Equal(t, typeArray, c.typ)
	assert.Equal(t, 10, c.cardinality())
}

func TestContainerRunOptimizeChoosesRunForContiguousSpan(t *testing.T) {
	c := newArrayContainer()
	for i := 0; i < 3000; i++ {
		c.set(uint16(i))
	}
	c.runOptimize()
	assert.Equal(t, typeRun, c.typ)
	assert.Equal(t, 3000, c.cardinality())
}

func TestContainerForkMaterializesPrivateCopy(t *testing.T) {
	a := newArrayContainer()
	a.set(1)
	a.set(2)

	b := a.clone()
	b.shared = true
	a.shared = true

	b.set(3)
	assert.False(t, a.contains(3))
	assert.True(t, b.contains(3))
}

func TestContainerRankSelectAllVariants(t *testing.T) {
	for _, mk := range []func() *container{
		func() *container { c := newArrayContainer(); return c },
		func() *container { c := newBitmapContainer(); return c },
		func() *container { c := newRunContainer(); return c },
	} {
		c := mk()
		for _, v := range []uint16{2, 4, 6, 8} {
			c.set(v)
		}
		assert.Equal(t, 2, c.rank(5))
		assert.Equal(t, 4, c.rank(100))
		v, ok := c.selectAt(2)
		assert.True(t, ok)
		assert.Equal(t, uint16(6), v)
		_, ok = c.selectAt(4)
		assert.False(t, ok)
	}
}

func TestMixedDispatchAgreesAcrossRepresentations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	randomValues := func(n int, max uint16) []uint16 {
		set := map[uint16]struct{}{}
		for len(set) < n {
			set[uint16(rng.Intn(int(max)))] = struct{}{}
		}
		out := make([]uint16, 0, n)
		for v := range set {
			out = append(out, v)
		}
		return out
	}

	build := func(values []uint16, typ ctype) *container {
		c := newArrayContainer()
		for _, v := range values {
			c.set(v)
		}
		switch typ {
		case typeBitmap:
			toBitmap(c)
		case typeRun:
			toRun(c)
		}
		return c
	}

	av := randomValues(50, 2000)
	bv := randomValues(50, 2000)

	for _, ta := range []ctype{typeArray, typeBitmap, typeRun} {
		for _, tb := range []ctype{typeArray, typeBitmap, typeRun} {
			a := build(av, ta)
			b := build(bv, tb)

			want := map[uint16]struct{}{}
			for _, v := range av {
				hasB := false
				for _, w := range bv {
					if w == v {
						hasB = true
						break
					}
				}
				if hasB {
					want[v] = struct{}{}
				}
			}

			r := andContainers(a, b)
			assert.Equal(t, len(want), r.cardinality(), "AND mismatch for (%v,%v)", ta, tb)
		}
	}
}

func TestLazyOrIntoAndRepair(t *testing.T) {
	out := New()
	a := FromValues(1, 2, 3)
	b := FromValues(3, 4, 5)

	lazyOrInto(out, a)
	lazyOrInto(out, b)
	repair(out)

	assert.Equal(t, 5, out.Count())
	assert.Equal(t, typeArray, out.dir.containers[0].typ)
}
