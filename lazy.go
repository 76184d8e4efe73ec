package roaring32

// Lazy operations and repair (spec.md §4.5 "Lazy discipline", §4.7
// "Many-way OR / XOR"). A lazy fold forces every touched slot to a Bitmap
// container (LAZY_OR_BITSET_CONVERSION) and marks its cardinality UNKNOWN
// instead of recomputing it on every fold step; repair walks the directory
// once afterward to restore the canonical-form invariant.

// lazyOrInto folds src into dst, forcing the Bitmap representation on every
// touched slot.
func lazyOrInto(dst *Bitmap, src *Bitmap) {
	for i := 0; i < src.dir.len(); i++ {
		key := src.dir.keys[i]
		idx, exists := dst.dir.getIndex(key)
		if !exists {
			c := src.dir.containers[i].clone()
			toBitmap(c)
			c.unknown = true
			dst.dir.insertAt(idx, key, c)
			continue
		}
		dst.dir.unshareAt(idx)
		dc := dst.dir.containers[idx]
		if dc.typ != typeBitmap {
			toBitmap(dc)
		}
		dc.bmpOrRaw(src.dir.containers[i])
		dc.unknown = true
	}
}

// lazyXorInto folds src into dst via XOR, same discipline as lazyOrInto.
func lazyXorInto(dst *Bitmap, src *Bitmap) {
	for i := 0; i < src.dir.len(); i++ {
		key := src.dir.keys[i]
		idx, exists := dst.dir.getIndex(key)
		if !exists {
			c := src.dir.containers[i].clone()
			toBitmap(c)
			c.unknown = true
			dst.dir.insertAt(idx, key, c)
			continue
		}
		dst.dir.unshareAt(idx)
		dc := dst.dir.containers[idx]
		if dc.typ != typeBitmap {
			toBitmap(dc)
		}
		dc.bmpXorRaw(src.dir.containers[i])
		dc.unknown = true
	}
}

// repair restores the canonical-form invariant after a sequence of lazy
// operations: UNKNOWN cardinalities are recomputed, bitmaps with
// popcount ≤ maxArraySize are downgraded to Array, and containers emptied
// by a lazy XOR fold are dropped from the directory.
func repair(rb *Bitmap) {
	write := 0
	for i, c := range rb.dir.containers {
		if c.unknown {
			c.card = uint32(c.bm.Count())
			c.unknown = false
		}
		if c.isEmpty() {
			continue
		}
		convertToCanonical(c)
		rb.dir.keys[write] = rb.dir.keys[i]
		rb.dir.containers[write] = c
		write++
	}
	rb.dir.keys = rb.dir.keys[:write]
	rb.dir.containers = rb.dir.containers[:write]
}
