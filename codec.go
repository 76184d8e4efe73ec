package roaring32

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Portable stream serialization (spec.md §6.2), grounded on the vendored
// RoaringBitmap/roaring roaringarray.go's toBytes/fromBuffer: a 32-bit
// cookie selects between a run-aware header (low 16 bits ==
// serialCookie, high 16 bits == n_containers-1) and a legacy
// all-containers-named header (serialCookieNoRunContainer followed by a
// full uint32 count), followed by a descriptive {key, cardinality-1}
// header (n_runs in place of cardinality-1 for a run container), an
// optional offset table, then each container's raw body.
const (
	serialCookie               = 12346
	serialCookieNoRunContainer = 12347
	noOffsetThreshold          = 4
)

// hasRunContainer reports whether any container in rb uses the Run
// representation — toBytes picks the run-aware header format only then.
func (rb *Bitmap) hasRunContainer() bool {
	for _, c := range rb.dir.containers {
		if c.typ == typeRun {
			return true
		}
	}
	return false
}

// WriteTo serializes rb in the portable format to w, returning the number
// of bytes written.
func (rb *Bitmap) WriteTo(w io.Writer) (int64, error) {
	buf, err := rb.ToBytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// ToBytes serializes rb to the portable format.
func (rb *Bitmap) ToBytes() ([]byte, error) {
	n := rb.dir.len()
	hasRun := rb.hasRunContainer()

	cookieSize := 8
	isRunBytes := 0
	if hasRun {
		cookieSize = 4
		isRunBytes = (n + 7) / 8
	}
	headerSize := cookieSize + isRunBytes + 4*n

	var buf bytes.Buffer
	buf.Grow(headerSize + bodySizeEstimate(rb))

	tmp := make([]byte, 4)
	if hasRun {
		binary.LittleEndian.PutUint16(tmp[0:], uint16(serialCookie))
		buf.Write(tmp[0:2])
		binary.LittleEndian.PutUint16(tmp[0:], uint16(n-1))
		buf.Write(tmp[0:2])

		isRun := make([]byte, isRunBytes)
		for i, c := range rb.dir.containers {
			if c.typ == typeRun {
				isRun[i/8] |= 1 << uint(i%8)
			}
		}
		buf.Write(isRun)
	} else {
		binary.LittleEndian.PutUint32(tmp, uint32(serialCookieNoRunContainer))
		buf.Write(tmp)
		binary.LittleEndian.PutUint32(tmp, uint32(n))
		buf.Write(tmp)
	}

	for i, c := range rb.dir.containers {
		binary.LittleEndian.PutUint16(tmp[0:], rb.dir.keys[i])
		buf.Write(tmp[0:2])
		count := uint16(c.cardinality() - 1)
		if c.typ == typeRun {
			count = uint16(len(c.runs))
		}
		binary.LittleEndian.PutUint16(tmp[0:], count)
		buf.Write(tmp[0:2])
	}

	if !hasRun || n >= noOffsetThreshold {
		offset := uint32(headerSize) + uint32(4*n)
		for _, c := range rb.dir.containers {
			binary.LittleEndian.PutUint32(tmp, offset)
			buf.Write(tmp)
			offset += uint32(containerBodySize(c))
		}
	}

	for _, c := range rb.dir.containers {
		if err := writeContainerBody(&buf, c); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func bodySizeEstimate(rb *Bitmap) int {
	n := 0
	for _, c := range rb.dir.containers {
		n += containerBodySize(c)
	}
	return n
}

func containerBodySize(c *container) int {
	switch c.typ {
	case typeArray:
		return c.cardinality() * 2
	case typeBitmap:
		return bitmapWords * 8
	case typeRun:
		return 2 + len(c.runs)*4
	}
	return 0
}

func writeContainerBody(buf *bytes.Buffer, c *container) error {
	switch c.typ {
	case typeArray:
		tmp := make([]byte, 2)
		for _, v := range c.arr {
			binary.LittleEndian.PutUint16(tmp, v)
			buf.Write(tmp)
		}
	case typeBitmap:
		tmp := make([]byte, 8)
		for _, w := range c.bm {
			binary.LittleEndian.PutUint64(tmp, w)
			buf.Write(tmp)
		}
	case typeRun:
		tmp := make([]byte, 4)
		binary.LittleEndian.PutUint16(tmp[0:2], uint16(len(c.runs)))
		buf.Write(tmp[0:2])
		for _, r := range c.runs {
			binary.LittleEndian.PutUint16(tmp[0:2], r.Start)
			binary.LittleEndian.PutUint16(tmp[2:4], r.End-r.Start)
			buf.Write(tmp)
		}
	}
	return nil
}

// ReadBitmap deserializes a portable-format buffer into a new Bitmap.
func ReadBitmap(buf []byte) (*Bitmap, error) {
	if len(buf) < 8 {
		return nil, ErrTruncated
	}
	cookie := binary.LittleEndian.Uint32(buf)
	pos := 4

	var n int
	hasRun := false
	var isRun []byte
	switch {
	case cookie&0x0000FFFF == serialCookie:
		hasRun = true
		n = int(uint16(cookie>>16)) + 1
		isRunBytes := (n + 7) / 8
		if pos+isRunBytes > len(buf) {
			return nil, ErrTruncated
		}
		isRun = buf[pos : pos+isRunBytes]
		pos += isRunBytes
	case cookie == serialCookieNoRunContainer:
		if pos+4 > len(buf) {
			return nil, ErrTruncated
		}
		n = int(binary.LittleEndian.Uint32(buf[pos:]))
		pos += 4
	default:
		return nil, ErrBadCookie
	}

	if pos+4*n > len(buf) {
		return nil, ErrTruncated
	}
	type keycard struct {
		key  uint16
		card int
	}
	entries := make([]keycard, n)
	for i := 0; i < n; i++ {
		entries[i].key = binary.LittleEndian.Uint16(buf[pos:])
		pos += 2
		entries[i].card = int(binary.LittleEndian.Uint16(buf[pos:])) + 1
		pos += 2
	}

	if !hasRun || n >= noOffsetThreshold {
		if pos+4*n > len(buf) {
			return nil, ErrTruncated
		}
		pos += 4 * n // offsets are recomputable; skip them on read
	}

	rb := New()
	rb.dir.keys = make([]uint16, n)
	rb.dir.containers = make([]*container, n)
	for i, e := range entries {
		isRunContainer := hasRun && isRun[i/8]&(1<<uint(i%8)) != 0
		c, consumed, err := readContainerBody(buf[pos:], e.card, isRunContainer)
		if err != nil {
			return nil, err
		}
		pos += consumed
		rb.dir.keys[i] = e.key
		rb.dir.containers[i] = c
	}
	return rb, nil
}

func readContainerBody(buf []byte, card int, isRun bool) (*container, int, error) {
	switch {
	case isRun:
		if len(buf) < 2 {
			return nil, 0, ErrTruncated
		}
		nRuns := int(binary.LittleEndian.Uint16(buf))
		pos := 2
		if len(buf) < pos+nRuns*4 {
			return nil, 0, ErrTruncated
		}
		runs := make([]runSpan, nRuns)
		for i := 0; i < nRuns; i++ {
			start := binary.LittleEndian.Uint16(buf[pos:])
			length := binary.LittleEndian.Uint16(buf[pos+2:])
			runs[i] = runSpan{start, start + length}
			pos += 4
		}
		c := &container{typ: typeRun, runs: runs}
		c.recomputeRunCard()
		return c, pos, nil
	case card > maxArraySize:
		size := bitmapWords * 8
		if len(buf) < size {
			return nil, 0, ErrTruncated
		}
		words := make([]uint64, bitmapWords)
		for i := range words {
			words[i] = binary.LittleEndian.Uint64(buf[i*8:])
		}
		return &container{typ: typeBitmap, bm: words, card: uint32(card)}, size, nil
	default:
		size := card * 2
		if len(buf) < size {
			return nil, 0, ErrTruncated
		}
		arr := make([]uint16, card)
		for i := range arr {
			arr[i] = binary.LittleEndian.Uint16(buf[i*2:])
		}
		return &container{typ: typeArray, arr: arr, card: uint32(card)}, size, nil
	}
}

// ReadFrom deserializes a portable-format stream from r into rb, replacing
// its contents.
func (rb *Bitmap) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	parsed, err := ReadBitmap(buf)
	if err != nil {
		return int64(len(buf)), err
	}
	rb.dir = parsed.dir
	return int64(len(buf)), nil
}
