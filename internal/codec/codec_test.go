package codec_test

import (
	"testing"

	"github.com/AndrewDonelson/colser/internal/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int    `json:"id" msgpack:"id" cbor:"id"`
	Name string `json:"name" msgpack:"name" cbor:"name"`
}

func TestCodecs_RoundTrip(t *testing.T) {
	tests := []struct {
		codec codec.Codec
		name  string
	}{
		{codec.JSON{}, "json"},
		{codec.MsgPack{}, "msgpack"},
		{codec.CBOR{}, "cbor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := item{ID: 42, Name: "pack"}
			b, err := tt.codec.Marshal(orig)
			require.NoError(t, err)

			var got item
			require.NoError(t, tt.codec.Unmarshal(b, &got))
			assert.Equal(t, orig, got)
			assert.Equal(t, tt.name, tt.codec.Name())
		})
	}
}

func TestCodecs_RejectGarbage(t *testing.T) {
	var got item
	assert.Error(t, codec.JSON{}.Unmarshal([]byte("{"), &got))
	assert.Error(t, codec.MsgPack{}.Unmarshal([]byte{0xc1}, &got))
	assert.Error(t, codec.CBOR{}.Unmarshal([]byte{0xff}, &got))
}

func TestCBOR_Deterministic(t *testing.T) {
	c := codec.CBOR{}
	a, err := c.Marshal(map[string]int{"b": 2, "a": 1, "c": 3})
	require.NoError(t, err)
	b, err := c.Marshal(map[string]int{"c": 3, "a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCodecs_RejectTrailingData(t *testing.T) {
	tests := []struct {
		codec codec.Codec
		extra []byte
	}{
		{codec.JSON{}, []byte(`{}`)},
		{codec.MsgPack{}, []byte{0xc0}},
		{codec.CBOR{}, []byte{0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.codec.Name(), func(t *testing.T) {
			b, err := tt.codec.Marshal(item{ID: 1, Name: "x"})
			require.NoError(t, err)

			var got item
			assert.Error(t, tt.codec.Unmarshal(append(b, tt.extra...), &got))
		})
	}
}

func TestMsgPack_TrailingDataError(t *testing.T) {
	b, err := codec.MsgPack{}.Marshal(7)
	require.NoError(t, err)

	var got int
	err = codec.MsgPack{}.Unmarshal(append(b, 0x01, 0x02), &got)
	assert.ErrorIs(t, err, codec.ErrTrailingData)
	assert.Contains(t, err.Error(), "2 bytes")
}
