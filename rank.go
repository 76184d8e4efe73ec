package roaring32

// Rank/select (spec.md §4.6 "Rank/select"), built directly on the
// container-level rank/selectAt primitives in container.go, walking the
// directory to find the container the target value or rank falls in.

// Rank returns the number of elements ≤ x (1-indexed count, 0 if x is
// smaller than every element).
func (rb *Bitmap) Rank(x uint32) int {
	hi, lo := hiLo(x)
	n := 0
	for i, key := range rb.dir.keys {
		switch {
		case key < hi:
			n += rb.dir.containers[i].cardinality()
		case key == hi:
			return n + rb.dir.containers[i].rank(lo)
		default:
			return n
		}
	}
	return n
}

// Select returns the (rank)th smallest element (0-indexed), per CRoaring's
// roaring_bitmap_select.
func (rb *Bitmap) Select(rank int) (uint32, bool) {
	if rank < 0 {
		return 0, false
	}
	remaining := rank
	for i, c := range rb.dir.containers {
		n := c.cardinality()
		if remaining < n {
			lo, ok := c.selectAt(remaining)
			if !ok {
				return 0, false
			}
			return uint32(rb.dir.keys[i])<<16 | uint32(lo), true
		}
		remaining -= n
	}
	return 0, false
}
