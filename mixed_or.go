package roaring32

import "math/bits"

// Mixed OR dispatch (spec.md §4.5). Grounded on the teacher's math_or.go.
// Result-type selection follows spec.md §4.5's rules: Array∪Array stays
// Array while ≤4096, Array∪Bitmap and Run∪Bitmap (unless full) go Bitmap,
// Array∪Run is built as a Run and then re-sized to the smallest form.

func orContainers(a, b *container) *container {
	switch a.typ {
	case typeArray:
		switch b.typ {
		case typeArray:
			return orArrArr(a, b)
		case typeBitmap:
			return orArrBmp(a, b)
		default:
			return orArrRun(a, b)
		}
	case typeBitmap:
		switch b.typ {
		case typeArray:
			return orArrBmp(b, a)
		case typeBitmap:
			return orBmpBmp(a, b)
		default:
			return orBmpRun(b, a)
		}
	default: // typeRun
		switch b.typ {
		case typeArray:
			return orArrRun(b, a)
		case typeBitmap:
			return orBmpRun(a, b)
		default:
			return orRunRun(a, b)
		}
	}
}

func orCardinality(a, b *container) int {
	switch {
	case a.typ == typeArray && b.typ == typeArray:
		return len(union16(a.arr, b.arr))
	case a.typ == typeBitmap && b.typ == typeBitmap:
		n := 0
		for i := range a.bm {
			n += bits.OnesCount64(a.bm[i] | b.bm[i])
		}
		return n
	default:
		return a.cardinality() + b.cardinality() - andCardinality(a, b)
	}
}

func orArrArr(a, b *container) *container {
	merged := union16(a.arr, b.arr)
	out := &container{typ: typeArray, arr: merged, card: uint32(len(merged))}
	if len(merged) > maxArraySize {
		toBitmap(out)
	}
	return out
}

// orArrBmp always yields Bitmap (spec.md §4.5: "Array ∪ Bitmap: always
// Bitmap").
func orArrBmp(arr, bmp *container) *container {
	out := &container{typ: typeBitmap, bm: cloneBM(bmp.bm)}
	out.card = bmp.card
	for _, v := range arr.arr {
		w, b := v/64, uint(v%64)
		mask := uint64(1) << b
		if out.bm[w]&mask == 0 {
			out.bm[w] |= mask
			out.card++
		}
	}
	return out
}

// orArrRun merges the array into a copy of the runs, then lets
// convertConsideringRun pick the smallest of Array, Bitmap and Run, so the
// result is Run only when that form is the most compact.
func orArrRun(arr, run *container) *container {
	out := &container{typ: typeRun, runs: append([]runSpan(nil), run.runs...)}
	for _, v := range arr.arr {
		out.runSet(v)
	}
	out.recomputeRunCard()
	convertConsideringRun(out)
	return out
}

func orBmpBmp(a, b *container) *container {
	words := make([]uint64, bitmapWords)
	card := 0
	for i := range words {
		words[i] = a.bm[i] | b.bm[i]
		card += bits.OnesCount64(words[i])
	}
	out := &container{typ: typeBitmap, bm: words, card: uint32(card)}
	return out
}

// orBmpRun yields Bitmap unless run is full (spec.md §4.5's
// "Full-container short-circuit": OR with a full Run yields full).
func orBmpRun(bmp, run *container) *container {
	if run.isFull() {
		return &container{typ: typeRun, runs: []runSpan{{0, 0xFFFF}}, card: 65536}
	}
	out := &container{typ: typeBitmap, bm: cloneBM(bmp.bm)}
	for _, r := range run.runs {
		bitsetSetRange(out.bm, uint32(r.Start), uint32(r.End))
	}
	card := 0
	for _, w := range out.bm {
		card += bits.OnesCount64(w)
	}
	out.card = uint32(card)
	return out
}

func orRunRun(a, b *container) *container {
	if a.isFull() || b.isFull() {
		return &container{typ: typeRun, runs: []runSpan{{0, 0xFFFF}}, card: 65536}
	}
	merged := mergeRuns(a.runs, b.runs)
	out := &container{typ: typeRun, runs: merged}
	out.recomputeRunCard()
	convertToCanonical(out)
	return out
}

// mergeRuns merges two sorted run-span lists, coalescing overlaps/adjacency.
func mergeRuns(a, b []runSpan) []runSpan {
	all := make([]runSpan, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Start <= b[j].Start {
			all = append(all, a[i])
			i++
		} else {
			all = append(all, b[j])
			j++
		}
	}
	all = append(all, a[i:]...)
	all = append(all, b[j:]...)

	if len(all) == 0 {
		return all
	}
	out := all[:1]
	for _, r := range all[1:] {
		last := &out[len(out)-1]
		if int(r.Start) <= int(last.End)+1 {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
