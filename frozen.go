package roaring32

import "encoding/binary"

// Frozen random-access format (spec.md §6.3): a single flat buffer holding
// every container's raw body back to back, followed by per-container keys,
// counts, and typecodes, and a trailing 4-byte header giving the container
// count and a magic cookie. FrozenView decodes this layout into containers
// marked shared (never mutated in place without a fork), the Go-idiomatic
// stand-in for the "read-only bitmap over externally owned memory" contract
// spec.md's DESIGN NOTES call out for roaring_bitmap_frozen_view.
const (
	frozenCookie    = 0x5A3C // 15 bits wide, per spec.md §6.3's header layout
	frozenAlignment = 32
)

// FrozenSize returns the exact byte count FrozenSerialize will write.
func (rb *Bitmap) FrozenSize() int {
	n := rb.dir.len()
	size := 0
	for _, c := range rb.dir.containers {
		switch c.typ {
		case typeBitmap:
			size += bitmapWords * 8
		case typeRun:
			size += len(c.runs) * 4
		case typeArray:
			size += c.cardinality() * 2
		}
	}
	size += 2 * n // keys
	size += 2 * n // counts
	size += n     // typecodes
	size += 4     // header
	return size
}

// FrozenSerialize writes rb's frozen representation. The buffer is not padded
// for alignment; FrozenView decodes through encoding/binary and accepts it at
// any address.
func (rb *Bitmap) FrozenSerialize() []byte {
	n := rb.dir.len()
	buf := make([]byte, rb.FrozenSize())
	pos := 0

	for _, c := range rb.dir.containers {
		if c.typ != typeBitmap {
			continue
		}
		for _, w := range c.bm {
			binary.LittleEndian.PutUint64(buf[pos:], w)
			pos += 8
		}
	}
	for _, c := range rb.dir.containers {
		if c.typ != typeRun {
			continue
		}
		for _, r := range c.runs {
			binary.LittleEndian.PutUint16(buf[pos:], r.Start)
			binary.LittleEndian.PutUint16(buf[pos+2:], r.End-r.Start)
			pos += 4
		}
	}
	for _, c := range rb.dir.containers {
		if c.typ != typeArray {
			continue
		}
		for _, v := range c.arr {
			binary.LittleEndian.PutUint16(buf[pos:], v)
			pos += 2
		}
	}
	for _, key := range rb.dir.keys {
		binary.LittleEndian.PutUint16(buf[pos:], key)
		pos += 2
	}
	for _, c := range rb.dir.containers {
		var count uint16
		switch c.typ {
		case typeRun:
			count = uint16(len(c.runs))
		default:
			count = uint16(c.cardinality() - 1)
		}
		binary.LittleEndian.PutUint16(buf[pos:], count)
		pos += 2
	}
	for _, c := range rb.dir.containers {
		buf[pos] = byte(c.typ) + 1 // BITSET=1, ARRAY=2, RUN=3 (spec.md §6.1)
		pos++
	}
	header := uint32(n)<<15 | uint32(frozenCookie)
	binary.LittleEndian.PutUint32(buf[pos:], header)
	return buf
}

// FrozenView parses a frozen-format buffer into a read-only Bitmap. Every
// container body is decoded into newly allocated slices; the result does not
// alias buf, and buf may be reused once FrozenView returns.
func FrozenView(buf []byte) (*Bitmap, error) {
	if len(buf) < 4 {
		return nil, ErrTruncated
	}
	header := binary.LittleEndian.Uint32(buf[len(buf)-4:])
	if header&0x7FFF != frozenCookie {
		return nil, ErrBadCookie
	}
	n := int(header >> 15)

	pos := len(buf) - 4
	pos -= n
	if pos < 0 {
		return nil, ErrTruncated
	}
	typecodes := buf[pos : pos+n]

	pos -= 2 * n
	if pos < 0 {
		return nil, ErrTruncated
	}
	counts := buf[pos : pos+2*n]

	pos -= 2 * n
	if pos < 0 {
		return nil, ErrTruncated
	}
	keys := buf[pos : pos+2*n]

	bodyEnd := pos
	rb := New()
	rb.dir.keys = make([]uint16, n)
	rb.dir.containers = make([]*container, n)

	// Two passes over the body region: first compute each container's
	// byte length (requires the typecodes/counts tables already sliced
	// above), then carve out the bodies front-to-back in the order
	// bitset, run, array (spec.md §6.3's layout).
	type meta struct {
		typ   ctype
		count int
	}
	metas := make([]meta, n)
	for i := 0; i < n; i++ {
		rb.dir.keys[i] = binary.LittleEndian.Uint16(keys[2*i:])
		count := int(binary.LittleEndian.Uint16(counts[2*i:]))
		tc := typecodes[i]
		var typ ctype
		switch tc {
		case 1:
			typ = typeBitmap
		case 2:
			typ = typeArray
		case 3:
			typ = typeRun
		default:
			return nil, ErrUnknownType
		}
		metas[i] = meta{typ: typ, count: count}
	}

	bodyPos := 0
	for i, m := range metas {
		if m.typ != typeBitmap {
			continue
		}
		size := bitmapWords * 8
		if bodyPos+size > bodyEnd {
			return nil, ErrTruncated
		}
		words := make([]uint64, bitmapWords)
		for w := 0; w < bitmapWords; w++ {
			words[w] = binary.LittleEndian.Uint64(buf[bodyPos+w*8:])
		}
		rb.dir.containers[i] = &container{typ: typeBitmap, bm: words, card: uint32(m.count) + 1, shared: true}
		bodyPos += size
	}
	for i, m := range metas {
		if m.typ != typeRun {
			continue
		}
		nRuns := m.count
		size := nRuns * 4
		if bodyPos+size > bodyEnd {
			return nil, ErrTruncated
		}
		runs := make([]runSpan, nRuns)
		for r := 0; r < nRuns; r++ {
			start := binary.LittleEndian.Uint16(buf[bodyPos+r*4:])
			length := binary.LittleEndian.Uint16(buf[bodyPos+r*4+2:])
			runs[r] = runSpan{start, start + length}
		}
		c := &container{typ: typeRun, runs: runs, shared: true}
		c.recomputeRunCard()
		rb.dir.containers[i] = c
		bodyPos += size
	}
	for i, m := range metas {
		if m.typ != typeArray {
			continue
		}
		card := m.count + 1
		size := card * 2
		if bodyPos+size > bodyEnd {
			return nil, ErrTruncated
		}
		arr := make([]uint16, card)
		for v := 0; v < card; v++ {
			arr[v] = binary.LittleEndian.Uint16(buf[bodyPos+v*2:])
		}
		rb.dir.containers[i] = &container{typ: typeArray, arr: arr, card: uint32(card), shared: true}
		bodyPos += size
	}

	rb.frozen = true
	return rb, nil
}
