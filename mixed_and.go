package roaring32

import "math/bits"

// Mixed AND dispatch (spec.md §4.5), 3×3 over {Array, Bitmap, Run}.
// Grounded on the teacher's math_and.go (same per-pair helper naming and
// dispatch shape). Each pair returns a freshly allocated container in its
// chosen representation, possibly empty; callers test isEmpty themselves.

func andContainers(a, b *container) *container {
	switch a.typ {
	case typeArray:
		switch b.typ {
		case typeArray:
			return andArrArr(a, b)
		case typeBitmap:
			return andArrBmp(a, b)
		default:
			return andArrRun(a, b)
		}
	case typeBitmap:
		switch b.typ {
		case typeArray:
			return andArrBmp(b, a)
		case typeBitmap:
			return andBmpBmp(a, b)
		default:
			return andBmpRun(a, b)
		}
	default: // typeRun
		switch b.typ {
		case typeArray:
			return andArrRun(b, a)
		case typeBitmap:
			return andBmpRun(b, a)
		default:
			return andRunRun(a, b)
		}
	}
}

// andCardinality computes |a ∩ b| (spec.md §4.5's cardinality_OP). Only the
// Array∩Array and Bitmap∩Bitmap pairs count without materializing; every
// other pairing builds the intersection container and reads its cardinality.
func andCardinality(a, b *container) int {
	switch {
	case a.typ == typeArray && b.typ == typeArray:
		return intersectCount(a.arr, b.arr)
	case a.typ == typeBitmap && b.typ == typeBitmap:
		n, lim := 0, len(a.bm)
		if len(b.bm) < lim {
			lim = len(b.bm)
		}
		for i := 0; i < lim; i++ {
			n += bits.OnesCount64(a.bm[i] & b.bm[i])
		}
		return n
	default:
		// No cheap closed form for the remaining pairings; fall back to
		// materializing, which is still O(min(|a|,|b|)) in practice.
		return andContainers(a, b).cardinality()
	}
}

func andArrArr(a, b *container) *container {
	out := &container{typ: typeArray, arr: intersect16(a.arr, b.arr)}
	out.card = uint32(len(out.arr))
	return out
}

func andArrBmp(arr, bmp *container) *container {
	out := make([]uint16, 0, len(arr.arr))
	for _, v := range arr.arr {
		if bmp.bm.Contains(uint32(v)) {
			out = append(out, v)
		}
	}
	return &container{typ: typeArray, arr: out, card: uint32(len(out))}
}

func andArrRun(arr, run *container) *container {
	out := make([]uint16, 0, len(arr.arr))
	for _, v := range arr.arr {
		if run.runHas(v) {
			out = append(out, v)
		}
	}
	return &container{typ: typeArray, arr: out, card: uint32(len(out))}
}

func andBmpBmp(a, b *container) *container {
	words := make([]uint64, bitmapWords)
	card := 0
	for i := range words {
		words[i] = a.bm[i] & b.bm[i]
		card += bits.OnesCount64(words[i])
	}
	out := &container{typ: typeBitmap, bm: words, card: uint32(card)}
	if card <= maxArraySize {
		toArray(out)
	}
	return out
}

func andBmpRun(bmp, run *container) *container {
	if run.isFull() {
		out := &container{typ: typeBitmap, bm: cloneBM(bmp.bm), card: bmp.card}
		if out.cardinality() <= maxArraySize {
			toArray(out)
		}
		return out
	}
	out := &container{typ: typeRun}
	var runs []runSpan
	card := uint32(0)
	for _, r := range run.runs {
		start, open := 0, false
		for v := int(r.Start); v <= int(r.End); v++ {
			set := bmp.bm.Contains(uint32(v))
			switch {
			case set && !open:
				start, open = v, true
			case !set && open:
				runs = append(runs, runSpan{uint16(start), uint16(v - 1)})
				card += uint32(v - start)
				open = false
			}
		}
		if open {
			runs = append(runs, runSpan{uint16(start), r.End})
			card += uint32(int(r.End)-start) + 1
		}
	}
	out.runs = runs
	out.card = card
	convertToCanonical(out)
	return out
}

func andRunRun(a, b *container) *container {
	out := &container{typ: typeRun}
	i, j := 0, 0
	var runs []runSpan
	card := uint32(0)
	for i < len(a.runs) && j < len(b.runs) {
		ra, rb := a.runs[i], b.runs[j]
		lo := ra.Start
		if rb.Start > lo {
			lo = rb.Start
		}
		hi := ra.End
		if rb.End < hi {
			hi = rb.End
		}
		if lo <= hi {
			runs = append(runs, runSpan{lo, hi})
			card += uint32(hi-lo) + 1
		}
		if ra.End < rb.End {
			i++
		} else {
			j++
		}
	}
	out.runs = runs
	out.card = card
	convertToCanonical(out)
	return out
}

