package roaring32

import (
	"math/bits"

	"github.com/kelindar/bitmap"
)

// ctype tags which representation a container currently uses.
type ctype uint8

const (
	typeArray ctype = iota
	typeBitmap
	typeRun
)

// Thresholds from spec.md §3/§4: arrays are canonical at ≤4096 elements,
// bitmaps above. optimizeEvery amortizes run-structure checks the same way
// the teacher's tryOptimize does, instead of re-scanning on every mutation.
const (
	maxArraySize  = 4096
	optimizeEvery = 2048
)

// runSpan is an inclusive [Start, End] run, the in-memory counterpart of the
// wire format's {value, length} pair (length = End - Start).
type runSpan struct {
	Start, End uint16
}

func (r runSpan) length() int { return int(r.End-r.Start) + 1 }

// container represents a subset of [0, 2^16) in one of three canonical
// forms. Only the field matching typ is populated; the others are nil/zero.
// shared marks that arr/bm/runs may be aliased by another container (via
// Clone) and must be forked (deep-copied) before any in-place mutation —
// this is the Go-idiomatic stand-in for the spec's refcounted Shared
// wrapper, see DESIGN.md.
type container struct {
	typ     ctype
	shared  bool
	card    uint32
	unknown bool // true: card is stale after a lazy op, must repair() first
	calls   uint16

	arr  []uint16
	bm   bitmap.Bitmap
	runs []runSpan
}

func newArrayContainer() *container {
	return &container{typ: typeArray, arr: make([]uint16, 0, 32)}
}

func newBitmapContainer() *container {
	return &container{typ: typeBitmap, bm: make(bitmap.Bitmap, 1024)}
}

func newRunContainer() *container {
	return &container{typ: typeRun}
}

// cardinality returns the exact cardinality, repairing an UNKNOWN bitmap
// cardinality first if needed.
func (c *container) cardinality() int {
	if c.unknown {
		c.card = uint32(c.bm.Count())
		c.unknown = false
	}
	return int(c.card)
}

func (c *container) isEmpty() bool { return c.cardinality() == 0 }

// isFull reports whether the container represents all of [0, 2^16).
func (c *container) isFull() bool {
	return c.typ == typeRun && len(c.runs) == 1 && c.runs[0].Start == 0 && c.runs[0].End == 0xFFFF
}

// clone returns a deep, independently-owned copy.
func (c *container) clone() *container {
	out := &container{typ: c.typ, card: c.card, unknown: c.unknown}
	switch c.typ {
	case typeArray:
		out.arr = append([]uint16(nil), c.arr...)
	case typeBitmap:
		out.bm = cloneBM(c.bm)
	case typeRun:
		out.runs = append([]runSpan(nil), c.runs...)
	}
	return out
}

// fork ensures exclusive ownership of the backing storage before mutation,
// materializing a private copy if the container is marked shared.
func (c *container) fork() {
	if !c.shared {
		return
	}
	switch c.typ {
	case typeArray:
		c.arr = append([]uint16(nil), c.arr...)
	case typeBitmap:
		c.bm = cloneBM(c.bm)
	case typeRun:
		c.runs = append([]runSpan(nil), c.runs...)
	}
	c.shared = false
}

// set adds value to the container, returning whether it was newly added.
func (c *container) set(value uint16) bool {
	c.fork()
	var ok bool
	switch c.typ {
	case typeArray:
		ok = c.arrSet(value)
		if ok && c.card > maxArraySize {
			toBitmap(c)
		}
	case typeBitmap:
		ok = c.bmpSet(value)
	case typeRun:
		ok = c.runSet(value)
	}
	if ok {
		c.tryOptimize()
	}
	return ok
}

// remove removes value from the container, returning whether it was present.
func (c *container) remove(value uint16) bool {
	c.fork()
	var ok bool
	switch c.typ {
	case typeArray:
		ok = c.arrDel(value)
	case typeBitmap:
		ok = c.bmpDel(value)
		if ok && c.card <= maxArraySize {
			toArray(c)
		}
	case typeRun:
		ok = c.runDel(value)
	}
	if ok {
		c.tryOptimize()
	}
	return ok
}

func (c *container) contains(value uint16) bool {
	switch c.typ {
	case typeArray:
		return c.arrHas(value)
	case typeBitmap:
		return c.bmpHas(value)
	case typeRun:
		return c.runHas(value)
	}
	return false
}

// tryOptimize re-evaluates the canonical form periodically rather than on
// every single mutation, amortizing the conversion-heuristic cost.
func (c *container) tryOptimize() {
	c.calls++
	if c.calls%optimizeEvery == 0 {
		c.optimize()
	}
}

// optimize converts the container to its canonical form immediately.
func (c *container) optimize() {
	c.fork()
	convertToCanonical(c)
}

// runOptimize additionally considers Run as a candidate form, per spec.md
// §4.5 "Run-optimize": pick the smallest of {current, Array, Bitmap, Run}.
func (c *container) runOptimize() {
	c.fork()
	convertConsideringRun(c)
}

func (c *container) min() (uint16, bool) {
	if c.isEmpty() {
		return 0, false
	}
	switch c.typ {
	case typeArray:
		return c.arr[0], true
	case typeBitmap:
		return c.bmpMin()
	case typeRun:
		return c.runs[0].Start, true
	}
	return 0, false
}

func (c *container) max() (uint16, bool) {
	if c.isEmpty() {
		return 0, false
	}
	switch c.typ {
	case typeArray:
		return c.arr[len(c.arr)-1], true
	case typeBitmap:
		return c.bmpMax()
	case typeRun:
		return c.runs[len(c.runs)-1].End, true
	}
	return 0, false
}

// iterate calls fn for every value in the container, in increasing order,
// stopping early if fn returns false.
func (c *container) iterate(fn func(v uint16) bool) {
	switch c.typ {
	case typeArray:
		for _, v := range c.arr {
			if !fn(v) {
				return
			}
		}
	case typeBitmap:
		for i, w := range c.bm {
			for w != 0 {
				b := bits.TrailingZeros64(w)
				if !fn(uint16(i*64 + b)) {
					return
				}
				w &= w - 1
			}
		}
	case typeRun:
		for _, r := range c.runs {
			for v := int(r.Start); v <= int(r.End); v++ {
				if !fn(uint16(v)) {
					return
				}
			}
		}
	}
}

// rank returns the number of elements ≤ value (0 if none).
func (c *container) rank(value uint16) int {
	switch c.typ {
	case typeArray:
		idx, found := find16(c.arr, value)
		if found {
			return idx + 1
		}
		return idx
	case typeBitmap:
		return c.bmpRank(value)
	case typeRun:
		n := 0
		for _, r := range c.runs {
			switch {
			case value < r.Start:
				return n
			case value <= r.End:
				return n + int(value-r.Start) + 1
			default:
				n += r.length()
			}
		}
		return n
	}
	return 0
}

// selectAt returns the (rank)th smallest value (0-indexed).
func (c *container) selectAt(rank int) (uint16, bool) {
	if rank < 0 || rank >= c.cardinality() {
		return 0, false
	}
	switch c.typ {
	case typeArray:
		return c.arr[rank], true
	case typeBitmap:
		return c.bmpSelect(rank)
	case typeRun:
		remaining := rank
		for _, r := range c.runs {
			n := r.length()
			if remaining < n {
				return r.Start + uint16(remaining), true
			}
			remaining -= n
		}
	}
	return 0, false
}

// equalOrLarger returns the smallest value ≥ v present, if any (spec.md
// §9's iterator cursor, generalized across representations).
func (c *container) equalOrLarger(v uint16) (uint16, bool) {
	switch c.typ {
	case typeArray:
		return c.arrEqualOrLarger(v)
	case typeBitmap:
		return c.bmpEqualOrLarger(v)
	case typeRun:
		return c.runEqualOrLarger(v)
	}
	return 0, false
}

// equalOrSmaller returns the largest value ≤ v present, if any.
func (c *container) equalOrSmaller(v uint16) (uint16, bool) {
	switch c.typ {
	case typeArray:
		return c.arrEqualOrSmaller(v)
	case typeBitmap:
		return c.bmpEqualOrSmaller(v)
	case typeRun:
		return c.runEqualOrSmaller(v)
	}
	return 0, false
}

// equals compares contents irrespective of representation.
func (c *container) equals(o *container) bool {
	if c.cardinality() != o.cardinality() {
		return false
	}
	if c.typ == o.typ {
		switch c.typ {
		case typeArray:
			if len(c.arr) != len(o.arr) {
				return false
			}
			for i := range c.arr {
				if c.arr[i] != o.arr[i] {
					return false
				}
			}
			return true
		case typeRun:
			if len(c.runs) != len(o.runs) {
				return false
			}
			for i := range c.runs {
				if c.runs[i] != o.runs[i] {
					return false
				}
			}
			return true
		}
	}
	eq := true
	c.iterate(func(v uint16) bool {
		if !o.contains(v) {
			eq = false
			return false
		}
		return true
	})
	return eq
}
