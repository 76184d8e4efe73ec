package roaring32

// Forward/reverse cursor (spec.md §9 "Iterator state"): holds the
// container index, the in-container position via equalOrLarger/
// equalOrSmaller, and the current value. Borrows the bitmap; behavior at
// UINT32_MAX must not overflow — after emitting UINT32_MAX, advancing
// reports done instead of wrapping back to 0.

// Iterator walks a Bitmap's elements in increasing order.
type Iterator struct {
	rb      *Bitmap
	idx     int
	cur     uint32
	hasCur  bool
	started bool
}

// Iterator returns a forward iterator positioned before the first element.
func (rb *Bitmap) Iterator() *Iterator {
	return &Iterator{rb: rb}
}

// HasNext reports whether a further element remains.
func (it *Iterator) HasNext() bool {
	if !it.started {
		return it.rb.dir.len() > 0
	}
	if !it.hasCur {
		return false
	}
	if it.cur == 0xFFFFFFFF {
		return false
	}
	return it.peekFrom(it.cur+1) != nil
}

// Next returns the next element and advances the cursor. Calling Next past
// the end returns (0, false).
func (it *Iterator) Next() (uint32, bool) {
	if !it.started {
		it.started = true
		if v := it.peekFrom(0); v != nil {
			it.idx = v.idx
			it.cur = v.val
			it.hasCur = true
			return it.cur, true
		}
		it.hasCur = false
		return 0, false
	}
	if !it.hasCur || it.cur == 0xFFFFFFFF {
		it.hasCur = false
		return 0, false
	}
	if v := it.peekFrom(it.cur + 1); v != nil {
		it.idx = v.idx
		it.cur = v.val
		return it.cur, true
	}
	it.hasCur = false
	return 0, false
}

type foundValue struct {
	idx int
	val uint32
}

// peekFrom finds the smallest element ≥ from, starting the directory scan
// at it.idx (the last container visited) to avoid rescanning from zero.
func (it *Iterator) peekFrom(from uint32) *foundValue {
	hi, lo := hiLo(from)
	start := it.idx
	if start >= it.rb.dir.len() {
		start = it.rb.dir.len() - 1
	}
	if start < 0 {
		start = 0
	}
	for start > 0 && it.rb.dir.keys[start] > hi {
		start--
	}
	for i := start; i < it.rb.dir.len(); i++ {
		key := it.rb.dir.keys[i]
		if key < hi {
			continue
		}
		floor := uint16(0)
		if key == hi {
			floor = lo
		}
		if v, ok := it.rb.dir.containers[i].equalOrLarger(floor); ok {
			return &foundValue{idx: i, val: uint32(key)<<16 | uint32(v)}
		}
	}
	return nil
}

// ReverseIterator walks a Bitmap's elements in decreasing order.
type ReverseIterator struct {
	rb      *Bitmap
	idx     int
	cur     uint32
	hasCur  bool
	started bool
}

// ReverseIterator returns a reverse iterator positioned after the last element.
func (rb *Bitmap) ReverseIterator() *ReverseIterator {
	return &ReverseIterator{rb: rb}
}

func (it *ReverseIterator) HasNext() bool {
	if !it.started {
		return it.rb.dir.len() > 0
	}
	if !it.hasCur || it.cur == 0 {
		return false
	}
	return it.peekFrom(it.cur-1) != nil
}

func (it *ReverseIterator) Next() (uint32, bool) {
	if !it.started {
		it.started = true
		if v := it.peekFrom(0xFFFFFFFF); v != nil {
			it.idx = v.idx
			it.cur = v.val
			it.hasCur = true
			return it.cur, true
		}
		it.hasCur = false
		return 0, false
	}
	if !it.hasCur || it.cur == 0 {
		it.hasCur = false
		return 0, false
	}
	if v := it.peekFrom(it.cur - 1); v != nil {
		it.idx = v.idx
		it.cur = v.val
		return it.cur, true
	}
	it.hasCur = false
	return 0, false
}

// peekFrom finds the largest element ≤ from.
func (it *ReverseIterator) peekFrom(from uint32) *foundValue {
	hi, lo := hiLo(from)
	start := it.idx
	n := it.rb.dir.len()
	if start >= n {
		start = n - 1
	}
	if start < 0 {
		return nil
	}
	for start < n-1 && it.rb.dir.keys[start] < hi {
		start++
	}
	for i := start; i >= 0; i-- {
		key := it.rb.dir.keys[i]
		if key > hi {
			continue
		}
		ceil := uint16(0xFFFF)
		if key == hi {
			ceil = lo
		}
		if v, ok := it.rb.dir.containers[i].equalOrSmaller(ceil); ok {
			return &foundValue{idx: i, val: uint32(key)<<16 | uint32(v)}
		}
	}
	return nil
}
