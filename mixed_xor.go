package roaring32

import "math/bits"

// Mixed XOR dispatch (spec.md §4.5): "XOR and ANDNOT apply the same 'pick
// the smaller canonical form' rule." Grounded on the teacher's math_xor.go.

func xorContainers(a, b *container) *container {
	switch a.typ {
	case typeArray:
		switch b.typ {
		case typeArray:
			return xorArrArr(a, b)
		case typeBitmap:
			return xorArrBmp(a, b)
		default:
			return xorArrRun(a, b)
		}
	case typeBitmap:
		switch b.typ {
		case typeArray:
			return xorArrBmp(b, a)
		case typeBitmap:
			return xorBmpBmp(a, b)
		default:
			return xorBmpRun(a, b)
		}
	default: // typeRun
		switch b.typ {
		case typeArray:
			return xorArrRun(b, a)
		case typeBitmap:
			return xorBmpRun(b, a)
		default:
			return xorRunRun(a, b)
		}
	}
}

func xorCardinality(a, b *container) int {
	return a.cardinality() + b.cardinality() - 2*andCardinality(a, b)
}

func xorArrArr(a, b *container) *container {
	merged := symmetricDifference16(a.arr, b.arr)
	out := &container{typ: typeArray, arr: merged, card: uint32(len(merged))}
	if len(merged) > maxArraySize {
		toBitmap(out)
	}
	return out
}

func xorArrBmp(arr, bmp *container) *container {
	out := &container{typ: typeBitmap, bm: cloneBM(bmp.bm), card: bmp.card}
	for _, v := range arr.arr {
		w, b := v/64, uint(v%64)
		mask := uint64(1) << b
		if out.bm[w]&mask != 0 {
			out.bm[w] &^= mask
			out.card--
		} else {
			out.bm[w] |= mask
			out.card++
		}
	}
	if out.card <= maxArraySize {
		toArray(out)
	}
	return out
}

func xorArrRun(arr, run *container) *container {
	out := &container{typ: typeRun, runs: append([]runSpan(nil), run.runs...)}
	for _, v := range arr.arr {
		if out.runHas(v) {
			out.runDel(v)
		} else {
			out.runSet(v)
		}
	}
	out.recomputeRunCard()
	convertConsideringRun(out)
	return out
}

func xorBmpBmp(a, b *container) *container {
	words := make([]uint64, bitmapWords)
	card := 0
	for i := range words {
		words[i] = a.bm[i] ^ b.bm[i]
		card += bits.OnesCount64(words[i])
	}
	out := &container{typ: typeBitmap, bm: words, card: uint32(card)}
	if card <= maxArraySize {
		toArray(out)
	}
	return out
}

func xorBmpRun(bmp, run *container) *container {
	out := &container{typ: typeBitmap, bm: cloneBM(bmp.bm)}
	for _, r := range run.runs {
		for v := int(r.Start); v <= int(r.End); v++ {
			w, b := uint16(v)/64, uint(uint16(v)%64)
			out.bm[w] ^= 1 << b
		}
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

func xorRunRun(a, b *container) *container {
	out := &container{typ: typeRun, runs: append([]runSpan(nil), a.runs...)}
	for _, r := range b.runs {
		for v := int(r.Start); v <= int(r.End); v++ {
			if out.runHas(uint16(v)) {
				out.runDel(uint16(v))
			} else {
				out.runSet(uint16(v))
			}
		}
	}
	out.recomputeRunCard()
	convertConsideringRun(out)
	return out
}
