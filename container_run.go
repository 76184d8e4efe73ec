package roaring32

// Run container (spec.md §4.3): a sequence of disjoint, sorted, non-adjacent
// inclusive spans. Grounded on the teacher's container_run.go (binary
// search over runs, in-place shift on insert/remove). The teacher stores
// runs as flat [start,end] pairs in a []uint16; we use a typed []runSpan
// slice for clarity, which is the same layout modulo field names.

// runFind locates the run containing value, or the insertion index if none
// does.
func (c *container) runFind(value uint16) (idx int, found bool) {
	lo, hi := 0, len(c.runs)
	for lo < hi {
		mid := (lo + hi) >> 1
		r := c.runs[mid]
		switch {
		case value < r.Start:
			hi = mid
		case value > r.End:
			lo = mid + 1
		default:
			return mid, true
		}
	}
	return lo, false
}

func (c *container) runSet(value uint16) bool {
	idx, found := c.runFind(value)
	if found {
		return false
	}

	mergeLeft := idx > 0 && c.runs[idx-1].End+1 == value
	mergeRight := idx < len(c.runs) && c.runs[idx].Start-1 == value

	switch {
	case mergeLeft && mergeRight:
		c.runs[idx-1].End = c.runs[idx].End
		c.runs = append(c.runs[:idx], c.runs[idx+1:]...)
	case mergeLeft:
		c.runs[idx-1].End = value
	case mergeRight:
		c.runs[idx].Start = value
	default:
		c.runs = append(c.runs, runSpan{})
		copy(c.runs[idx+1:], c.runs[idx:len(c.runs)-1])
		c.runs[idx] = runSpan{value, value}
	}
	c.card++
	return true
}

func (c *container) runDel(value uint16) bool {
	idx, found := c.runFind(value)
	if !found {
		return false
	}

	r := c.runs[idx]
	switch {
	case r.Start == r.End:
		c.runs = append(c.runs[:idx], c.runs[idx+1:]...)
	case value == r.Start:
		c.runs[idx].Start++
	case value == r.End:
		c.runs[idx].End--
	default:
		c.runs[idx].End = value - 1
		c.runs = append(c.runs, runSpan{})
		copy(c.runs[idx+2:], c.runs[idx+1:len(c.runs)-1])
		c.runs[idx+1] = runSpan{value + 1, r.End}
	}
	c.card--
	return true
}

func (c *container) runHas(value uint16) bool {
	_, ok := c.runFind(value)
	return ok
}

// runAddRange inserts [lo, hi] inclusive, coalescing with overlapping or
// adjacent runs.
func (c *container) runAddRange(lo, hi uint16) {
	start, _ := c.runFind(lo)
	if start > 0 && int(c.runs[start-1].End)+1 >= int(lo) {
		start--
	}

	// fold in every run overlapping or adjacent to [lo,hi]
	newLo, newHi := lo, hi
	i := start
	for i < len(c.runs) && runAdjacentOrOverlaps(c.runs[i], lo, hi) {
		if c.runs[i].Start < newLo {
			newLo = c.runs[i].Start
		}
		if c.runs[i].End > newHi {
			newHi = c.runs[i].End
		}
		i++
	}
	removed := i - start
	span := runSpan{newLo, newHi}
	if removed == 0 {
		c.runs = append(c.runs, runSpan{})
		copy(c.runs[start+1:], c.runs[start:len(c.runs)-1])
		c.runs[start] = span
	} else {
		c.runs[start] = span
		c.runs = append(c.runs[:start+1], c.runs[start+removed:]...)
	}
	c.recomputeRunCard()
}

// runAdjacentOrOverlaps reports whether r touches or overlaps [lo, hi].
// Compares in int to avoid wraparound when hi or r.End is 0xFFFF.
func runAdjacentOrOverlaps(r runSpan, lo, hi uint16) bool {
	return int(r.Start) <= int(hi)+1 && int(r.End)+1 >= int(lo)
}

// runRemoveRange removes [lo, hi] inclusive, splitting/shrinking runs.
func (c *container) runRemoveRange(lo, hi uint16) {
	out := c.runs[:0]
	for _, r := range c.runs {
		switch {
		case r.End < lo || r.Start > hi:
			out = append(out, r)
		case r.Start < lo && r.End > hi:
			out = append(out, runSpan{r.Start, lo - 1}, runSpan{hi + 1, r.End})
		case r.Start < lo:
			out = append(out, runSpan{r.Start, lo - 1})
		case r.End > hi:
			out = append(out, runSpan{hi + 1, r.End})
		}
		// else: run fully covered, dropped
	}
	c.runs = out
	c.recomputeRunCard()
}

func (c *container) recomputeRunCard() {
	n := uint32(0)
	for _, r := range c.runs {
		n += uint32(r.length())
	}
	c.card = n
}

func (c *container) runEqualOrLarger(v uint16) (uint16, bool) {
	idx, found := c.runFind(v)
	if found {
		return v, true
	}
	if idx < len(c.runs) {
		return c.runs[idx].Start, true
	}
	return 0, false
}

func (c *container) runEqualOrSmaller(v uint16) (uint16, bool) {
	idx, found := c.runFind(v)
	if found {
		return v, true
	}
	if idx > 0 {
		return c.runs[idx-1].End, true
	}
	return 0, false
}

func (c *container) runIsSubsetOf(o *container) bool {
	for _, r := range c.runs {
		for v := int(r.Start); v <= int(r.End); v++ {
			if !o.contains(uint16(v)) {
				return false
			}
		}
	}
	return true
}

func (c *container) runIntersects(o *container) bool {
	for _, r := range c.runs {
		for v := int(r.Start); v <= int(r.End); v++ {
			if o.contains(uint16(v)) {
				return true
			}
		}
	}
	return false
}
