package roaring32

// Public set-algebraic operations (spec.md §4.7). Every op is built on the
// same two-cursor merge over the two directories' sorted keys, grounded on
// the teacher's math_or.go or loop (the clearest of its overlapping
// drafts), generalized to AND/XOR/ANDNOT and to in-place/many-way variants.

// And returns a new bitmap containing the intersection of a and b.
func And(a, b *Bitmap) *Bitmap {
	out := New()
	i, j := 0, 0
	for i < a.dir.len() && j < b.dir.len() {
		ka, kb := a.dir.keys[i], b.dir.keys[j]
		switch {
		case ka < kb:
			i = a.dir.advanceUntil(kb, i)
		case ka > kb:
			j = b.dir.advanceUntil(ka, j)
		default:
			r := andContainers(a.dir.containers[i], b.dir.containers[j])
			if !r.isEmpty() {
				out.dir.append(ka, r)
			}
			i++
			j++
		}
	}
	return out
}

// Or returns a new bitmap containing the union of a and b.
func Or(a, b *Bitmap) *Bitmap {
	out := New()
	mergeDirectories(&out.dir, &a.dir, &b.dir, func(ca, cb *container) *container {
		return orContainers(ca, cb)
	}, false)
	return out
}

// Xor returns a new bitmap containing the symmetric difference of a and b.
func Xor(a, b *Bitmap) *Bitmap {
	out := New()
	mergeDirectories(&out.dir, &a.dir, &b.dir, func(ca, cb *container) *container {
		return xorContainers(ca, cb)
	}, true)
	return out
}

// AndNot returns a new bitmap containing a \ b.
func AndNot(a, b *Bitmap) *Bitmap {
	out := New()
	i, j := 0, 0
	for i < a.dir.len() {
		if j >= b.dir.len() {
			out.dir.appendCopyRange(&a.dir, i, a.dir.len(), true)
			return out
		}
		ka, kb := a.dir.keys[i], b.dir.keys[j]
		switch {
		case ka < kb:
			out.dir.appendCopyRange(&a.dir, i, i+1, true)
			i++
		case ka > kb:
			j = b.dir.advanceUntil(ka, j)
		default:
			r := andNotContainers(a.dir.containers[i], b.dir.containers[j])
			if !r.isEmpty() {
				out.dir.append(ka, r)
			}
			i++
			j++
		}
	}
	return out
}

// mergeDirectories implements the shared OR/XOR two-cursor merge: keys
// present in only one side are copied (COW), keys present in both are
// combined via combine. dropEmpty controls whether a combined result of
// zero cardinality is omitted (true for XOR, irrelevant but harmless for OR
// since OR never produces an empty result from two non-empty containers).
func mergeDirectories(out, a, b *directory, combine func(a, b *container) *container, dropEmpty bool) {
	i, j := 0, 0
	for i < a.len() && j < b.len() {
		ka, kb := a.keys[i], b.keys[j]
		switch {
		case ka < kb:
			out.appendCopyRange(a, i, i+1, true)
			i++
		case ka > kb:
			out.appendCopyRange(b, j, j+1, true)
			j++
		default:
			r := combine(a.containers[i], b.containers[j])
			if !dropEmpty || !r.isEmpty() {
				out.append(ka, r)
			}
			i++
			j++
		}
	}
	if i < a.len() {
		out.appendCopyRange(a, i, a.len(), true)
	}
	if j < b.len() {
		out.appendCopyRange(b, j, b.len(), true)
	}
}

// AndInPlace intersects other into rb in place, left-compacting the
// directory as containers are dropped (spec.md §4.7's "In-place AND
// additionally ... left-compacts x1 in place").
func (rb *Bitmap) AndInPlace(other *Bitmap) {
	if rb.frozen {
		return
	}
	write := 0
	i, j := 0, 0
	for i < rb.dir.len() && j < other.dir.len() {
		ka, kb := rb.dir.keys[i], other.dir.keys[j]
		switch {
		case ka < kb:
			i = rb.dir.advanceUntil(kb, i)
		case ka > kb:
			j = other.dir.advanceUntil(ka, j)
		default:
			r := andContainers(rb.dir.containers[i], other.dir.containers[j])
			if !r.isEmpty() {
				rb.dir.keys[write] = ka
				rb.dir.containers[write] = r
				write++
			}
			i++
			j++
		}
	}
	rb.dir.keys = rb.dir.keys[:write]
	rb.dir.containers = rb.dir.containers[:write]
}

// OrInPlace unions other into rb in place.
func (rb *Bitmap) OrInPlace(other *Bitmap) {
	if rb.frozen {
		return
	}
	merged := Or(rb, other)
	rb.dir = merged.dir
}

// XorInPlace symmetric-differences other into rb in place. Returns
// ErrSameOperand if other is rb itself, per spec.md §7's precondition.
func (rb *Bitmap) XorInPlace(other *Bitmap) error {
	if rb.frozen {
		return ErrFrozen
	}
	if rb == other {
		return ErrSameOperand
	}
	merged := Xor(rb, other)
	rb.dir = merged.dir
	return nil
}

// AndNotInPlace removes other's elements from rb in place. Returns
// ErrSameOperand if other is rb itself.
func (rb *Bitmap) AndNotInPlace(other *Bitmap) error {
	if rb.frozen {
		return ErrFrozen
	}
	if rb == other {
		return ErrSameOperand
	}
	write := 0
	i, j := 0, 0
	for i < rb.dir.len() {
		if j >= other.dir.len() {
			for ; i < rb.dir.len(); i++ {
				rb.dir.keys[write] = rb.dir.keys[i]
				rb.dir.containers[write] = rb.dir.containers[i]
				write++
			}
			break
		}
		ka, kb := rb.dir.keys[i], other.dir.keys[j]
		switch {
		case ka < kb:
			rb.dir.keys[write] = ka
			rb.dir.containers[write] = rb.dir.containers[i]
			write++
			i++
		case ka > kb:
			j = other.dir.advanceUntil(ka, j)
		default:
			r := andNotContainers(rb.dir.containers[i], other.dir.containers[j])
			if !r.isEmpty() {
				rb.dir.keys[write] = ka
				rb.dir.containers[write] = r
				write++
			}
			i++
			j++
		}
	}
	rb.dir.keys = rb.dir.keys[:write]
	rb.dir.containers = rb.dir.containers[:write]
	return nil
}

// AndMany intersects a with every bitmap in others, left to right.
func AndMany(a *Bitmap, others ...*Bitmap) *Bitmap {
	out := a.Clone()
	for _, o := range others {
		out.AndInPlace(o)
		if out.IsEmpty() {
			break
		}
	}
	return out
}

// OrMany unions a with every bitmap in others using the lazy bitmap
// accumulator strategy of spec.md §4.7 ("fold pairwise using the lazy
// variant ... then repair"): every key is forced to a lazy Bitmap
// container while folding, and canonicalized once at the end.
func OrMany(bitmaps ...*Bitmap) *Bitmap {
	out := New()
	for _, b := range bitmaps {
		lazyOrInto(out, b)
	}
	repair(out)
	return out
}

// XorMany XORs every bitmap together using the same lazy-fold strategy.
func XorMany(bitmaps ...*Bitmap) *Bitmap {
	out := New()
	for _, b := range bitmaps {
		lazyXorInto(out, b)
	}
	repair(out)
	return out
}

// IsSubset reports whether every element of a is in b.
func IsSubset(a, b *Bitmap) bool {
	i, j := 0, 0
	for i < a.dir.len() {
		if j >= b.dir.len() {
			return false
		}
		ka, kb := a.dir.keys[i], b.dir.keys[j]
		switch {
		case ka < kb:
			return false
		case ka > kb:
			j = b.dir.advanceUntil(ka, j)
		default:
			if !containerIsSubset(a.dir.containers[i], b.dir.containers[j]) {
				return false
			}
			i++
			j++
		}
	}
	return true
}

// IsStrictSubset reports whether a ⊊ b.
func IsStrictSubset(a, b *Bitmap) bool {
	return a.Count() < b.Count() && IsSubset(a, b)
}

// IntersectTest reports whether a and b share any element, without
// materializing the intersection.
func IntersectTest(a, b *Bitmap) bool {
	i, j := 0, 0
	for i < a.dir.len() && j < b.dir.len() {
		ka, kb := a.dir.keys[i], b.dir.keys[j]
		switch {
		case ka < kb:
			i = a.dir.advanceUntil(kb, i)
		case ka > kb:
			j = b.dir.advanceUntil(ka, j)
		default:
			if containerIntersects(a.dir.containers[i], b.dir.containers[j]) {
				return true
			}
			i++
			j++
		}
	}
	return false
}

// AndCardinality returns |a ∩ b| without materializing the result.
func AndCardinality(a, b *Bitmap) int {
	n := 0
	i, j := 0, 0
	for i < a.dir.len() && j < b.dir.len() {
		ka, kb := a.dir.keys[i], b.dir.keys[j]
		switch {
		case ka < kb:
			i = a.dir.advanceUntil(kb, i)
		case ka > kb:
			j = b.dir.advanceUntil(ka, j)
		default:
			n += andCardinality(a.dir.containers[i], b.dir.containers[j])
			i++
			j++
		}
	}
	return n
}

// OrCardinality returns |a ∪ b| = |a| + |b| - |a ∩ b|.
func OrCardinality(a, b *Bitmap) int {
	return a.Count() + b.Count() - AndCardinality(a, b)
}

// XorCardinality returns |a XOR b| = |a| + |b| - 2|a ∩ b|.
func XorCardinality(a, b *Bitmap) int {
	return a.Count() + b.Count() - 2*AndCardinality(a, b)
}

// AndNotCardinality returns |a \ b| = |a| - |a ∩ b|.
func AndNotCardinality(a, b *Bitmap) int {
	return a.Count() - AndCardinality(a, b)
}

// Jaccard returns the Jaccard similarity index |a∩b| / |a∪b|, 0 if both
// are empty (CRoaring's roaring_bitmap_jaccard_index).
func Jaccard(a, b *Bitmap) float64 {
	inter := AndCardinality(a, b)
	union := a.Count() + b.Count() - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func containerIsSubset(a, b *container) bool {
	switch a.typ {
	case typeArray:
		return a.arrIsSubsetOf(b)
	case typeBitmap:
		if b.typ == typeBitmap {
			return a.bmpIsSubsetOf(b)
		}
	case typeRun:
		return a.runIsSubsetOf(b)
	}
	ok := true
	a.iterate(func(v uint16) bool {
		if !b.contains(v) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

func containerIntersects(a, b *container) bool {
	if a.typ == typeBitmap && b.typ == typeBitmap {
		return a.bmpIntersects(b)
	}
	if a.typ == typeArray {
		return a.arrIntersects(b)
	}
	if b.typ == typeArray {
		return b.arrIntersects(a)
	}
	if a.typ == typeRun {
		return a.runIntersects(b)
	}
	return b.runIntersects(a)
}
