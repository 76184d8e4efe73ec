package roaring32

// Sorted-array primitives over []uint16 (spec.md §2.2). CRoaring isolates
// these as SIMD-accelerated micro-kernels and treats them as out-of-scope
// design content (spec.md §1); we could not ground a concrete exported
// SIMD API for this from the pack (see DESIGN.md), so these are the plain
// two-pointer merges the teacher itself falls back to in math_and.go /
// math_or.go.

// find16 performs a binary search for target in a sorted unique array.
// Returns (index, true) if found, else (insertion point, false) — the
// non-sign-encoded equivalent of spec.md §4.6's get_index.
func find16(a []uint16, target uint16) (int, bool) {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := (lo + hi) >> 1
		switch {
		case a[mid] == target:
			return mid, true
		case a[mid] < target:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// lowerBound16 returns the index of the first element ≥ target, or len(a).
func lowerBound16(a []uint16, target uint16) int {
	idx, _ := find16(a, target)
	return idx
}

// insert16 inserts value into a sorted unique array, returning the updated
// slice and whether the value was newly added.
func insert16(a []uint16, value uint16) ([]uint16, bool) {
	idx, found := find16(a, value)
	if found {
		return a, false
	}
	a = append(a, 0)
	copy(a[idx+1:], a[idx:len(a)-1])
	a[idx] = value
	return a, true
}

// remove16 removes value from a sorted unique array, returning the updated
// slice and whether it was present.
func remove16(a []uint16, value uint16) ([]uint16, bool) {
	idx, found := find16(a, value)
	if !found {
		return a, false
	}
	copy(a[idx:], a[idx+1:])
	return a[:len(a)-1], true
}

// union16 merges two sorted unique arrays into a freshly allocated result.
func union16(a, b []uint16) []uint16 {
	out := make([]uint16, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// intersect16 intersects two sorted unique arrays into a freshly allocated
// result. The lagging cursor is advanced with a galloping search, in the
// spirit of CRoaring's array_util intersection (out of scope as a SIMD
// kernel; this is the scalar fallback).
func intersect16(a, b []uint16) []uint16 {
	if len(a) > len(b) {
		a, b = b, a
	}
	out := make([]uint16, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i = gallop(a, i, b[j])
		default:
			j = gallop(b, j, a[i])
		}
	}
	return out
}

// gallop advances idx in a (sorted) until a[idx] >= target, doubling the
// step before falling back to a bounded binary search.
func gallop(a []uint16, idx int, target uint16) int {
	if idx >= len(a) || a[idx] >= target {
		return idx
	}
	step := 1
	next := idx
	for next < len(a) && a[next] < target {
		idx = next
		next += step
		step <<= 1
	}
	if next > len(a) {
		next = len(a)
	}
	lo, hi := idx, next
	for lo < hi {
		mid := (lo + hi) >> 1
		if a[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// intersectCount counts the intersection size without materializing it.
func intersectCount(a, b []uint16) int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return n
}

// difference16 computes a \ b into a freshly allocated result.
func difference16(a, b []uint16) []uint16 {
	out := make([]uint16, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			j++
		}
	}
	out = append(out, a[i:]...)
	return out
}

// symmetricDifference16 computes a XOR b into a freshly allocated result.
func symmetricDifference16(a, b []uint16) []uint16 {
	out := make([]uint16, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
