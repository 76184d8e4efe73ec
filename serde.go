package roaring32

import "encoding/binary"

// SerDe envelope (spec.md §6.5): a one-byte tag picks between the portable
// container format and a raw uint32-array fallback, choosing whichever
// serializes smaller (CRoaring's roaring_bitmap_serialize heuristic).
const (
	tagContainer   byte = 0x01
	tagArrayUint32 byte = 0x00
)

// Serialize appends rb's chosen SerDe encoding to buf and returns the
// result.
func Serialize(rb *Bitmap, buf []byte) ([]byte, error) {
	portable, err := rb.ToBytes()
	if err != nil {
		return nil, err
	}

	card := rb.Count()
	rawSize := 1 + 4 + 4*card
	if 1+len(portable) <= rawSize {
		out := append(buf, tagContainer)
		return append(out, portable...), nil
	}

	out := append(buf, tagArrayUint32)
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(card))
	out = append(out, tmp[:]...)
	rb.Range(func(v uint32) bool {
		binary.LittleEndian.PutUint32(tmp[:], v)
		out = append(out, tmp[:]...)
		return true
	})
	return out, nil
}

// Deserialize inspects buf's tag byte and decodes accordingly.
func Deserialize(buf []byte) (*Bitmap, error) {
	if len(buf) < 1 {
		return nil, ErrTruncated
	}
	switch buf[0] {
	case tagContainer:
		return ReadBitmap(buf[1:])
	case tagArrayUint32:
		if len(buf) < 5 {
			return nil, ErrTruncated
		}
		n := int(binary.LittleEndian.Uint32(buf[1:]))
		pos := 5
		if len(buf) < pos+4*n {
			return nil, ErrTruncated
		}
		rb := New()
		for i := 0; i < n; i++ {
			rb.Set(binary.LittleEndian.Uint32(buf[pos:]))
			pos += 4
		}
		return rb, nil
	default:
		return nil, ErrUnknownType
	}
}
