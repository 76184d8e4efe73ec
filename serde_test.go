package roaring32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeDeserializeSmallUsesArrayTag(t *testing.T) {
	rb := FromValues(1, 2, 3)
	buf, err := Serialize(rb, nil)
	assert.NoError(t, err)
	assert.Equal(t, tagArrayUint32, buf[0])

	out, err := Deserialize(buf)
	assert.NoError(t, err)
	assert.True(t, rb.Equals(out))
}

func TestSerializeDeserializeLargeUsesContainerTag(t *testing.T) {
	rb := FromRange(0, 20000, 1)
	buf, err := Serialize(rb, nil)
	assert.NoError(t, err)
	assert.Equal(t, tagContainer, buf[0])

	out, err := Deserialize(buf)
	assert.NoError(t, err)
	assert.True(t, rb.Equals(out))
}

func TestDeserializeRejectsUnknownTag(t *testing.T) {
	_, err := Deserialize([]byte{0xFF})
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestDeserializeRejectsEmptyBuffer(t *testing.T) {
	_, err := Deserialize(nil)
	assert.ErrorIs(t, err, ErrTruncated)
}
