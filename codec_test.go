package roaring32

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortableRoundTripMixedContainers(t *testing.T) {
	rb := New()
	for i := 0; i < 100; i += 2 { // array container
		rb.Set(uint32(i))
	}
	for i := 200000; i < 210000; i += 2 { // bitmap container
		rb.Set(uint32(i))
	}
	rb.AddRangeClosed(400000, 410000) // run-friendly container
	rb.Optimize()

	buf, err := rb.ToBytes()
	assert.NoError(t, err)

	got, err := ReadBitmap(buf)
	assert.NoError(t, err)
	assert.True(t, rb.Equals(got))
}

func TestWriteToReadFrom(t *testing.T) {
	rb := FromValues(1, 2, 3, 70000)

	var buf bytes.Buffer
	n, err := rb.WriteTo(&buf)
	assert.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	out := New()
	_, err = out.ReadFrom(&buf)
	assert.NoError(t, err)
	assert.True(t, rb.Equals(out))
}

func TestReadBitmapRejectsBadCookie(t *testing.T) {
	_, err := ReadBitmap([]byte{0, 0, 0, 0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, ErrBadCookie)
}

func TestReadBitmapRejectsTruncated(t *testing.T) {
	_, err := ReadBitmap([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestPortableRoundTripManyContainers(t *testing.T) {
	rb := New()
	for k := 0; k < 10; k++ {
		rb.Set(uint32(k) << 16)
	}
	buf, err := rb.ToBytes()
	assert.NoError(t, err)

	got, err := ReadBitmap(buf)
	assert.NoError(t, err)
	assert.True(t, rb.Equals(got))
}
