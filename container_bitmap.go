package roaring32

import (
	"math/bits"

	"github.com/kelindar/bitmap"
)

// Bitmap container (spec.md §4.2): a fixed 1024-word dense bitset, backed
// directly by github.com/kelindar/bitmap — the real third-party dependency
// the teacher already carries for this exact purpose (buffer.go, and
// container.go's bmpMin/bmpMax/bmpMinZero/bmpMaxZero wrapper methods, which
// only make sense if the underlying library exposes the same primitives as
// the array/run containers do). Word-level rank/select/range edits are
// implemented directly over the exported []uint64 word slice since they
// are not part of that library's advertised surface.

const bitmapWords = 1024 // 1024 × 64 bits = 65536

// cloneBM deep-copies a bitmap.Bitmap's backing words.
func cloneBM(b bitmap.Bitmap) bitmap.Bitmap {
	out := make(bitmap.Bitmap, len(b))
	copy(out, b)
	return out
}

func (c *container) bmpSet(value uint16) bool {
	if c.bm.Contains(uint32(value)) {
		return false
	}
	c.bm.Set(uint32(value))
	c.card++
	return true
}

func (c *container) bmpDel(value uint16) bool {
	if !c.bm.Contains(uint32(value)) {
		return false
	}
	c.bm.Remove(uint32(value))
	c.card--
	return true
}

func (c *container) bmpHas(value uint16) bool {
	return c.bm.Contains(uint32(value))
}

func (c *container) bmpMin() (uint16, bool) {
	for i, w := range c.bm {
		if w != 0 {
			return uint16(i*64 + bits.TrailingZeros64(w)), true
		}
	}
	return 0, false
}

func (c *container) bmpMax() (uint16, bool) {
	for i := len(c.bm) - 1; i >= 0; i-- {
		if w := c.bm[i]; w != 0 {
			return uint16(i*64 + 63 - bits.LeadingZeros64(w)), true
		}
	}
	return 0, false
}

// bmpRank returns the count of set bits ≤ value.
func (c *container) bmpRank(value uint16) int {
	word := int(value) / 64
	bit := uint(value) % 64
	n := 0
	for i := 0; i < word; i++ {
		n += bits.OnesCount64(c.bm[i])
	}
	mask := uint64(1)<<(bit+1) - 1
	if bit == 63 {
		mask = ^uint64(0)
	}
	n += bits.OnesCount64(c.bm[word] & mask)
	return n
}

// bmpSelect returns the (rank)th set bit (0-indexed).
func (c *container) bmpSelect(rank int) (uint16, bool) {
	remaining := rank
	for i, w := range c.bm {
		cnt := bits.OnesCount64(w)
		if remaining < cnt {
			for w != 0 {
				b := bits.TrailingZeros64(w)
				if remaining == 0 {
					return uint16(i*64 + b), true
				}
				remaining--
				w &= w - 1
			}
		}
		remaining -= cnt
	}
	return 0, false
}

// bmpSetRange sets bits [lo, hi] inclusive, without maintaining cardinality
// eagerly — callers must update card (spec.md §4.2's bitset_set_lenrange).
func (c *container) bmpSetRange(lo, hi uint16) {
	bitsetSetRange(c.bm, uint32(lo), uint32(hi))
}

func (c *container) bmpClearRange(lo, hi uint16) {
	bitsetClearRange(c.bm, uint32(lo), uint32(hi))
}

func (c *container) bmpAddRange(lo, hi uint16) {
	c.bmpSetRange(lo, hi)
	c.card = uint32(c.bm.Count())
}

func (c *container) bmpRemoveRange(lo, hi uint16) {
	c.bmpClearRange(lo, hi)
	c.card = uint32(c.bm.Count())
}

func (c *container) bmpEqualOrLarger(v uint16) (uint16, bool) {
	word := int(v) / 64
	bit := uint(v) % 64
	if word < len(c.bm) {
		if w := c.bm[word] &^ (uint64(1)<<bit - 1); w != 0 {
			return uint16(word*64 + bits.TrailingZeros64(w)), true
		}
		for i := word + 1; i < len(c.bm); i++ {
			if w := c.bm[i]; w != 0 {
				return uint16(i*64 + bits.TrailingZeros64(w)), true
			}
		}
	}
	return 0, false
}

// bmpEqualOrSmaller returns the largest bit ≤ v that is set, if any.
func (c *container) bmpEqualOrSmaller(v uint16) (uint16, bool) {
	word := int(v) / 64
	bit := uint(v) % 64
	if word < len(c.bm) {
		mask := uint64(1)<<(bit+1) - 1
		if bit == 63 {
			mask = ^uint64(0)
		}
		if w := c.bm[word] & mask; w != 0 {
			return uint16(word*64 + 63 - bits.LeadingZeros64(w)), true
		}
		for i := word - 1; i >= 0; i-- {
			if w := c.bm[i]; w != 0 {
				return uint16(i*64 + 63 - bits.LeadingZeros64(w)), true
			}
		}
	}
	return 0, false
}

func (c *container) bmpIsSubsetOf(o *container) bool {
	for i, w := range c.bm {
		var ow uint64
		if i < len(o.bm) {
			ow = o.bm[i]
		}
		if w&^ow != 0 {
			return false
		}
	}
	return true
}

func (c *container) bmpIntersects(o *container) bool {
	n := len(c.bm)
	if len(o.bm) < n {
		n = len(o.bm)
	}
	for i := 0; i < n; i++ {
		if c.bm[i]&o.bm[i] != 0 {
			return true
		}
	}
	return false
}

// bitsetSetRange sets the inclusive bit range [lo, hi] in a word slice.
func bitsetSetRange(words []uint64, lo, hi uint32) {
	if lo > hi {
		return
	}
	wlo, whi := lo/64, hi/64
	blo, bhi := lo%64, hi%64
	if wlo == whi {
		words[wlo] |= rangeMask(blo, bhi)
		return
	}
	words[wlo] |= rangeMask(blo, 63)
	for w := wlo + 1; w < whi; w++ {
		words[w] = ^uint64(0)
	}
	words[whi] |= rangeMask(0, bhi)
}

// bitsetClearRange clears the inclusive bit range [lo, hi] in a word slice.
func bitsetClearRange(words []uint64, lo, hi uint32) {
	if lo > hi {
		return
	}
	wlo, whi := lo/64, hi/64
	blo, bhi := lo%64, hi%64
	if wlo == whi {
		words[wlo] &^= rangeMask(blo, bhi)
		return
	}
	words[wlo] &^= rangeMask(blo, 63)
	for w := wlo + 1; w < whi; w++ {
		words[w] = 0
	}
	words[whi] &^= rangeMask(0, bhi)
}

// rangeMask returns a mask with bits [lo, hi] (inclusive, within one word) set.
func rangeMask(lo, hi uint32) uint64 {
	if hi == 63 {
		return ^uint64(0) << lo
	}
	return (uint64(1)<<(hi+1) - 1) &^ (uint64(1)<<lo - 1)
}

// bmpOrRaw ORs src's bits directly into c's words without maintaining
// cardinality — the lazy accumulation step of spec.md §4.7's many-way OR.
func (c *container) bmpOrRaw(src *container) {
	switch src.typ {
	case typeBitmap:
		for i := range c.bm {
			c.bm[i] |= src.bm[i]
		}
	case typeArray:
		for _, v := range src.arr {
			w, b := v/64, uint(v%64)
			c.bm[w] |= 1 << b
		}
	case typeRun:
		for _, r := range src.runs {
			bitsetSetRange(c.bm, uint32(r.Start), uint32(r.End))
		}
	}
}

// bmpXorRaw XORs src's bits directly into c's words without maintaining
// cardinality.
func (c *container) bmpXorRaw(src *container) {
	switch src.typ {
	case typeBitmap:
		for i := range c.bm {
			c.bm[i] ^= src.bm[i]
		}
	case typeArray:
		for _, v := range src.arr {
			w, b := v/64, uint(v%64)
			c.bm[w] ^= 1 << b
		}
	case typeRun:
		for _, r := range src.runs {
			for v := int(r.Start); v <= int(r.End); v++ {
				w, b := uint16(v)/64, uint(uint16(v)%64)
				c.bm[w] ^= 1 << b
			}
		}
	}
}

// setListWithCard sets each listed bit, returning the new cardinality accounting for
// bits already set (spec.md §4.2's bitset_set_list_withcard).
func setListWithCard(words []uint64, card int, list []uint16) int {
	for _, v := range list {
		w, b := v/64, uint(v%64)
		mask := uint64(1) << b
		if words[w]&mask == 0 {
			words[w] |= mask
			card++
		}
	}
	return card
}
