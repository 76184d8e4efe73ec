package roaring32

import "math/bits"

// Mixed ANDNOT dispatch (spec.md §4.5). Grounded on the teacher's
// math_andnot.go. Unlike AND/OR/XOR, ANDNOT is not commutative so every one
// of the 9 pairings needs its own function — there is no "swap and reuse"
// shortcut.

func andNotContainers(a, b *container) *container {
	switch a.typ {
	case typeArray:
		switch b.typ {
		case typeArray:
			return andNotArrArr(a, b)
		case typeBitmap:
			return andNotArrBmp(a, b)
		default:
			return andNotArrRun(a, b)
		}
	case typeBitmap:
		switch b.typ {
		case typeArray:
			return andNotBmpArr(a, b)
		case typeBitmap:
			return andNotBmpBmp(a, b)
		default:
			return andNotBmpRun(a, b)
		}
	default: // typeRun
		switch b.typ {
		case typeArray:
			return andNotRunArr(a, b)
		case typeBitmap:
			return andNotRunBmp(a, b)
		default:
			return andNotRunRun(a, b)
		}
	}
}

func andNotCardinality(a, b *container) int {
	return a.cardinality() - andCardinality(a, b)
}

func andNotArrArr(a, b *container) *container {
	out := difference16(a.arr, b.arr)
	return &container{typ: typeArray, arr: out, card: uint32(len(out))}
}

func andNotArrBmp(arr, bmp *container) *container {
	out := make([]uint16, 0, len(arr.arr))
	for _, v := range arr.arr {
		if !bmp.bm.Contains(uint32(v)) {
			out = append(out, v)
		}
	}
	return &container{typ: typeArray, arr: out, card: uint32(len(out))}
}

func andNotArrRun(arr, run *container) *container {
	out := make([]uint16, 0, len(arr.arr))
	for _, v := range arr.arr {
		if !run.runHas(v) {
			out = append(out, v)
		}
	}
	return &container{typ: typeArray, arr: out, card: uint32(len(out))}
}

func andNotBmpArr(bmp, arr *container) *container {
	out := &container{typ: typeBitmap, bm: cloneBM(bmp.bm), card: bmp.card}
	for _, v := range arr.arr {
		w, b := v/64, uint(v%64)
		mask := uint64(1) << b
		if out.bm[w]&mask != 0 {
			out.bm[w] &^= mask
			out.card--
		}
	}
	if out.card <= maxArraySize {
		toArray(out)
	}
	return out
}

func andNotBmpBmp(a, b *container) *container {
	words := make([]uint64, bitmapWords)
	card := 0
	for i := range words {
		words[i] = a.bm[i] &^ b.bm[i]
		card += bits.OnesCount64(words[i])
	}
	out := &container{typ: typeBitmap, bm: words, card: uint32(card)}
	if card <= maxArraySize {
		toArray(out)
	}
	return out
}

func andNotBmpRun(bmp, run *container) *container {
	out := &container{typ: typeBitmap, bm: cloneBM(bmp.bm)}
	for _, r := range run.runs {
		bitsetClearRange(out.bm, uint32(r.Start), uint32(r.End))
	}
	card := 0
	for _, w := range out.bm {
		card += bits.OnesCount64(w)
	}
	out.card = uint32(card)
	if card <= maxArraySize {
		toArray(out)
	}
	return out
}

func andNotRunArr(run, arr *container) *container {
	out := &container{typ: typeRun, runs: append([]runSpan(nil), run.runs...)}
	for _, v := range arr.arr {
		out.runDel(v)
	}
	out.recomputeRunCard()
	convertConsideringRun(out)
	return out
}

func andNotRunBmp(run, bmp *container) *container {
	out := &container{typ: typeRun}
	var runs []runSpan
	card := uint32(0)
	for _, r := range run.runs {
		start, open := 0, false
		for v := int(r.Start); v <= int(r.End); v++ {
			set := bmp.bm.Contains(uint32(v))
			switch {
			case !set && !open:
				start, open = v, true
			case set && open:
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

func andNotRunRun(a, b *container) *container {
	out := &container{typ: typeRun, runs: append([]runSpan(nil), a.runs...)}
	for _, r := range b.runs {
		out.runRemoveRange(r.Start, r.End)
	}
	convertConsideringRun(out)
	return out
}
