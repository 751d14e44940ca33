package colser_test

import (
	"testing"

	"github.com/AndrewDonelson/colser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestAES256GCM_RoundTrip(t *testing.T) {
	enc, err := colser.NewAES256GCM(testKey())
	require.NoError(t, err)

	plain := []byte("Hello, colser!")
	sealed, err := enc.Encrypt(plain)
	require.NoError(t, err)
	assert.NotEqual(t, plain, sealed)
	assert.Len(t, sealed, len(plain)+enc.Overhead())

	decrypted, err := enc.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, plain, decrypted)
}

func TestAES256GCM_InvalidKeyLength(t *testing.T) {
	_, err := colser.NewAES256GCM([]byte("short"))
	assert.ErrorIs(t, err, colser.ErrInvalidKey)
}

func TestAES256GCM_TamperDetection(t *testing.T) {
	enc, err := colser.NewAES256GCM(make([]byte, 32))
	require.NoError(t, err)
	sealed, err := enc.Encrypt([]byte("secret"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xFF
	_, err = enc.Decrypt(sealed)
	assert.Error(t, err)

	_, err = enc.Decrypt(sealed[:4])
	assert.ErrorIs(t, err, colser.ErrCiphertextTooShort)
}
