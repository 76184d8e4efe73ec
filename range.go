package roaring32

// Range operations (spec.md §4.7 "Range ops", "Flip"). min/max are taken as
// uint64 so that r ≥ 2^32 can be clamped per spec.md §8's boundary cases
// instead of silently wrapping.

const maxUniverse = uint64(1) << 32

func clampRange(lo, hi uint64) (uint32, uint32, bool) {
	if hi > maxUniverse {
		hi = maxUniverse
	}
	if lo >= hi {
		return 0, 0, false
	}
	return uint32(lo), uint32(hi - 1), true // hi becomes inclusive max
}

// AddRangeClosed adds every value in [lo, hi) to the bitmap, clamping hi to
// 2^32 and no-op'ing when lo >= hi (spec.md §8).
func (rb *Bitmap) AddRangeClosed(lo, hi uint64) {
	if rb.frozen {
		return
	}
	min, max, ok := clampRange(lo, hi)
	if !ok {
		return
	}

	hiMin, loMin := hiLo(min)
	hiMax, loMax := hiLo(max)

	for key := hiMin; ; key++ {
		lo16, hi16 := uint16(0), uint16(0xFFFF)
		if key == hiMin {
			lo16 = loMin
		}
		if key == hiMax {
			hi16 = loMax
		}

		idx, exists := rb.dir.getIndex(key)
		switch {
		case exists:
			rb.dir.unshareAt(idx)
			rb.dir.containers[idx].addRange(lo16, hi16)
		default:
			rb.dir.insertAt(idx, key, containerFromRange(lo16, hi16))
		}

		if key == hiMax {
			break
		}
	}
}

// RemoveRangeClosed removes every value in [lo, hi) from the bitmap,
// dropping any container left empty.
func (rb *Bitmap) RemoveRangeClosed(lo, hi uint64) {
	if rb.frozen {
		return
	}
	min, max, ok := clampRange(lo, hi)
	if !ok {
		return
	}

	hiMin, loMin := hiLo(min)
	hiMax, loMax := hiLo(max)

	i, _ := rb.dir.getIndex(hiMin)
	for i < rb.dir.len() && rb.dir.keys[i] <= hiMax {
		key := rb.dir.keys[i]
		lo16, hi16 := uint16(0), uint16(0xFFFF)
		if key == hiMin {
			lo16 = loMin
		}
		if key == hiMax {
			hi16 = loMax
		}

		rb.dir.unshareAt(i)
		c := rb.dir.containers[i]
		c.removeRange(lo16, hi16)
		if c.isEmpty() {
			rb.dir.removeAt(i)
			continue
		}
		i++
	}
}

// addRange dispatches to the per-type range-add primitive.
func (c *container) addRange(lo, hi uint16) {
	switch c.typ {
	case typeArray:
		c.arrAddRange(lo, hi)
		if c.cardinality() > maxArraySize {
			toBitmap(c)
		}
	case typeBitmap:
		c.bmpAddRange(lo, hi)
	case typeRun:
		c.runAddRange(lo, hi)
	}
}

// removeRange dispatches to the per-type range-remove primitive.
func (c *container) removeRange(lo, hi uint16) {
	switch c.typ {
	case typeArray:
		c.arrRemoveRange(lo, hi)
	case typeBitmap:
		c.bmpRemoveRange(lo, hi)
		if c.cardinality() <= maxArraySize {
			toArray(c)
		}
	case typeRun:
		c.runRemoveRange(lo, hi)
	}
}

// Flip complements the bitmap over [lo, hi) and returns the result as a new
// bitmap, leaving rb untouched (spec.md §4.7's "Flip").
func Flip(rb *Bitmap, lo, hi uint64) *Bitmap {
	out := rb.CloneDeep()
	out.FlipInPlace(lo, hi)
	return out
}

// FlipInPlace complements [lo, hi) in place.
func (rb *Bitmap) FlipInPlace(lo, hi uint64) {
	if rb.frozen {
		return
	}
	min, max, ok := clampRange(lo, hi)
	if !ok {
		return
	}

	hiMin, loMin := hiLo(min)
	hiMax, loMax := hiLo(max)

	var out directory
	key := uint16(0)
	hasKey := false
	i := 0
	for key = hiMin; ; key++ {
		lo16, hi16 := uint16(0), uint16(0xFFFF)
		if key == hiMin {
			lo16 = loMin
		}
		if key == hiMax {
			hi16 = loMax
		}

		for i < rb.dir.len() && rb.dir.keys[i] < key {
			out.append(rb.dir.keys[i], rb.dir.containers[i])
			i++
		}

		var c *container
		if i < rb.dir.len() && rb.dir.keys[i] == key {
			rb.dir.unshareAt(i)
			c = complementRange(rb.dir.containers[i], lo16, hi16)
			i++
		} else {
			c = containerFromRange(lo16, hi16)
		}
		if !c.isEmpty() {
			out.append(key, c)
		}
		hasKey = true

		if key == hiMax {
			break
		}
	}
	_ = hasKey

	for i < rb.dir.len() {
		out.append(rb.dir.keys[i], rb.dir.containers[i])
		i++
	}
	rb.dir = out
}

// complementRange flips [lo, hi] (inclusive) within a single container.
func complementRange(c *container, lo, hi uint16) *container {
	full := containerFromRange(lo, hi)
	return xorContainers(c, full)
}

// ContainsRange reports whether every value in [lo, hi) is present
// (spec.md §8's law: contains_range(b,l,r) ⇔ ANDNOT(B([l,r)), b) = ∅).
func (rb *Bitmap) ContainsRange(lo, hi uint64) bool {
	min, max, ok := clampRange(lo, hi)
	if !ok {
		return true // empty range is vacuously contained
	}
	hiMin, loMin := hiLo(min)
	hiMax, loMax := hiLo(max)

	for key := hiMin; ; key++ {
		lo16, hi16 := uint16(0), uint16(0xFFFF)
		if key == hiMin {
			lo16 = loMin
		}
		if key == hiMax {
			hi16 = loMax
		}

		idx, exists := rb.dir.getIndex(key)
		if !exists {
			return false
		}
		if !containerContainsRange(rb.dir.containers[idx], lo16, hi16) {
			return false
		}

		if key == hiMax {
			break
		}
	}
	return true
}

func containerContainsRange(c *container, lo, hi uint16) bool {
	for v := int(lo); v <= int(hi); v++ {
		if !c.contains(uint16(v)) {
			return false
		}
	}
	return true
}
