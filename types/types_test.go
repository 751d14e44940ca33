package types_test

import (
	"math"
	"testing"

	"github.com/AndrewDonelson/colser"
	"github.com/AndrewDonelson/colser/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip[T comparable](t *testing.T, c colser.ElementCodec[T], v T) []byte {
	t.Helper()
	b, err := c.Encode(v)
	require.NoError(t, err)
	require.NoError(t, c.Validate(b))
	got, err := c.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	return b
}

func TestUTF8(t *testing.T) {
	c := types.UTF8{}
	assert.Equal(t, []byte("héllo"), roundTrip[string](t, c, "héllo"))
	assert.ErrorIs(t, c.Validate([]byte{0xC3}), types.ErrInvalidUTF8)
	_, err := c.Encode(string([]byte{0xFF}))
	assert.ErrorIs(t, err, types.ErrInvalidUTF8)
	assert.Equal(t, "héllo", c.Format("héllo"))
}

func TestASCII(t *testing.T) {
	c := types.ASCII{}
	roundTrip[string](t, c, "plain text")
	assert.ErrorIs(t, c.Validate([]byte("é")), types.ErrInvalidASCII)
	_, err := c.Encode("é")
	assert.ErrorIs(t, err, types.ErrInvalidASCII)
}

func TestBytes(t *testing.T) {
	c := types.Bytes{}
	roundTrip[string](t, c, "\x00\x01\xff")
	assert.Equal(t, "0x0001ff", c.Format("\x00\x01\xff"))
	assert.Equal(t, "0x", c.Format(""))
}

func TestInt32(t *testing.T) {
	c := types.Int32{}
	assert.Equal(t, []byte{0x80, 0, 0, 0}, roundTrip[int32](t, c, math.MinInt32))
	roundTrip[int32](t, c, -7)
	assert.Equal(t, "-7", c.Format(-7))

	assert.ErrorIs(t, c.Validate([]byte{1, 2, 3}), types.ErrInvalidLength)
	_, err := c.Decode([]byte{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, types.ErrInvalidLength)
}

func TestInt64(t *testing.T) {
	c := types.Int64{}
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 0}, roundTrip[int64](t, c, 256))
	roundTrip[int64](t, c, math.MaxInt64)
	assert.ErrorIs(t, c.Validate(nil), types.ErrInvalidLength)
	assert.Equal(t, "256", c.Format(256))
}

func TestBoolean(t *testing.T) {
	c := types.Boolean{}
	assert.Equal(t, []byte{1}, roundTrip[bool](t, c, true))
	assert.Equal(t, []byte{0}, roundTrip[bool](t, c, false))

	v, err := c.Decode([]byte{0x7F})
	require.NoError(t, err)
	assert.True(t, v)
	assert.ErrorIs(t, c.Validate([]byte{}), types.ErrInvalidLength)
	assert.Equal(t, "true", c.Format(true))
}

func TestDouble(t *testing.T) {
	c := types.Double{}
	roundTrip[float64](t, c, 3.25)
	roundTrip[float64](t, c, math.Inf(-1))
	assert.Equal(t, "3.25", c.Format(3.25))
	assert.ErrorIs(t, c.Validate([]byte{1}), types.ErrInvalidLength)
}

func TestUUID(t *testing.T) {
	c := types.UUID{}
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	b := roundTrip[uuid.UUID](t, c, id)
	assert.Len(t, b, 16)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", c.Format(id))
	assert.ErrorIs(t, c.Validate(b[:15]), types.ErrInvalidLength)
}

func TestElementCodecs_InSet(t *testing.T) {
	c := colser.NewSetCodec[uuid.UUID](types.UUID{})
	a, b := uuid.New(), uuid.New()
	buf, err := c.Encode(colser.SetOf(a, b, a))
	require.NoError(t, err)

	out, err := c.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, out.Values())
	assert.Equal(t, a.String()+"; "+b.String(), c.Format(out))
}

func TestElementCodecs_InternByValue(t *testing.T) {
	r := colser.NewRegistry(colser.Config{})
	a := colser.MustSetCodecOf[int32](r, types.Int32{})
	b := colser.MustSetCodecOf[int32](r, types.Int32{})
	assert.Same(t, a, b)
}
