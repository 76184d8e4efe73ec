package roaring32

// Container-type conversions and the canonical-form selection rules of
// spec.md §3/§4.5. Grounded on the teacher's arrToRun/arrToBmp,
// bitmapConvertFrom*, runToArray/runToBmp, unified into size-comparison
// tables instead of the teacher's ad hoc per-direction heuristics, closer
// to what spec.md §4.5's "Run-optimize" literally describes: pick the
// smallest of {current, Array, Bitmap, Run}.

func toArray(c *container) {
	if c.typ == typeArray {
		return
	}
	arr := make([]uint16, 0, c.cardinality())
	c.iterate(func(v uint16) bool {
		arr = append(arr, v)
		return true
	})
	c.typ = typeArray
	c.arr = arr
	c.bm = nil
	c.runs = nil
	c.unknown = false
}

func toBitmap(c *container) {
	if c.typ == typeBitmap {
		return
	}
	bm := make([]uint64, bitmapWords)
	c.iterate(func(v uint16) bool {
		w, b := v/64, uint(v%64)
		bm[w] |= 1 << b
		return true
	})
	c.typ = typeBitmap
	c.bm = bm
	c.arr = nil
	c.runs = nil
	c.unknown = false
}

func toRun(c *container) {
	if c.typ == typeRun {
		return
	}
	var runs []runSpan
	var start, prev uint16
	open := false
	c.iterate(func(v uint16) bool {
		switch {
		case !open:
			start, prev = v, v
			open = true
		case v == prev+1:
			prev = v
		default:
			runs = append(runs, runSpan{start, prev})
			start, prev = v, v
		}
		return true
	})
	if open {
		runs = append(runs, runSpan{start, prev})
	}
	c.typ = typeRun
	c.runs = runs
	c.arr = nil
	c.bm = nil
	c.unknown = false
}

// byteSize estimates the serialized payload size of a container in each
// representation, per spec.md §4.5's "Run-optimize".
func byteSizeAsArray(card int) int { return card * 2 }
func byteSizeAsBitmap() int        { return 8192 }
func byteSizeAsRun(nRuns int) int  { return 2 + nRuns*4 }

// countRuns returns how many runs the container's contents would form,
// without mutating it.
func countRuns(c *container) int {
	if c.typ == typeRun {
		return len(c.runs)
	}
	n := 0
	var prev uint16
	open := false
	c.iterate(func(v uint16) bool {
		switch {
		case !open:
			open = true
		case v != prev+1:
			n++
		}
		prev = v
		return true
	})
	if open {
		n++
	}
	return n
}

// convertToCanonical enforces spec.md §3's canonical-form invariant:
// ≤4096 elements ⇒ Array (unless Run is strictly smaller); >4096 ⇒ Bitmap
// (unless Run is strictly smaller). Does not consider Run unless the
// container is already a run (cheap to preserve, never to discover).
func convertToCanonical(c *container) {
	card := c.cardinality()
	switch {
	case c.typ == typeRun:
		// Re-validate: a run container is only canonical while it remains
		// smaller than both Array and Bitmap at its current cardinality.
		size := byteSizeAsRun(len(c.runs))
		if size >= byteSizeAsArray(card) && card <= maxArraySize {
			toArray(c)
		} else if size >= byteSizeAsBitmap() && card > maxArraySize {
			toBitmap(c)
		}
	case card <= maxArraySize && c.typ != typeArray:
		toArray(c)
	case card > maxArraySize && c.typ != typeBitmap:
		toBitmap(c)
	}
}

// convertConsideringRun additionally tries Run as a candidate, per
// spec.md §4.5's run_optimize: compute the would-be Run size and pick the
// smallest of {current, Array, Bitmap, Run}.
func convertConsideringRun(c *container) {
	card := c.cardinality()
	nRuns := countRuns(c)

	sizes := [3]int{byteSizeAsArray(card), byteSizeAsBitmap(), byteSizeAsRun(nRuns)}
	best := 0
	for i := 1; i < 3; i++ {
		if sizes[i] < sizes[best] {
			best = i
		}
	}
	// Array is only a legal canonical form at ≤maxArraySize; above that,
	// it is never picked even if nominally smaller (spec.md §3).
	if best == 0 && card > maxArraySize {
		best = 1
	}

	switch best {
	case 0:
		toArray(c)
	case 1:
		toBitmap(c)
	case 2:
		toRun(c)
	}
}

// containerFromRange synthesizes a fresh container covering [lo, hi]
// inclusive, picking the most compact representation directly (spec.md
// §4.7's container_from_range).
func containerFromRange(lo, hi uint16) *container {
	card := int(hi-lo) + 1
	c := &container{typ: typeRun, runs: []runSpan{{lo, hi}}, card: uint32(card)}
	convertToCanonical(c)
	return c
}
