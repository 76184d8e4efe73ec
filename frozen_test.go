package roaring32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrozenRoundTrip(t *testing.T) {
	rb := New()
	for i := 0; i < 50; i++ {
		rb.Set(uint32(i))
	}
	for i := 200000; i < 205000; i++ {
		rb.Set(uint32(i))
	}
	rb.AddRangeClosed(400000, 410000)
	rb.Optimize()

	buf := rb.FrozenSerialize()
	assert.Equal(t, rb.FrozenSize(), len(buf))

	view, err := FrozenView(buf)
	assert.NoError(t, err)
	assert.True(t, rb.Equals(view))
}

func TestFrozenViewRejectsBadCookie(t *testing.T) {
	_, err := FrozenView([]byte{0, 0, 0, 0})
	assert.ErrorIs(t, err, ErrBadCookie)
}

func TestFrozenViewRejectsTruncated(t *testing.T) {
	_, err := FrozenView([]byte{1, 2})
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestFrozenViewIsMarkedFrozen(t *testing.T) {
	rb := FromValues(1, 2, 3)
	buf := rb.FrozenSerialize()
	view, err := FrozenView(buf)
	assert.NoError(t, err)

	view.Set(99) // must be a no-op on a frozen bitmap
	assert.False(t, view.Contains(99))
}
