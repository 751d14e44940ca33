package types

import (
	"fmt"

	"github.com/AndrewDonelson/colser"
)

// Encrypted seals each element produced by an inner codec. Encryption uses a
// random nonce, so equal values encode to different bytes; decoded values
// still collapse in a set because equality is checked after decryption.
type Encrypted[T any] struct {
	inner colser.ElementCodec[T]
	enc   colser.Encryptor
}

// NewEncrypted wraps inner with enc. For registry interning enc should be a
// pointer (e.g. *colser.AES256GCM) so that the codec stays comparable.
func NewEncrypted[T any](inner colser.ElementCodec[T], enc colser.Encryptor) Encrypted[T] {
	return Encrypted[T]{inner: inner, enc: enc}
}

func (e Encrypted[T]) open(b []byte) ([]byte, error) {
	plain, err := e.enc.Decrypt(b)
	if err != nil {
		return nil, fmt.Errorf("types: decrypt element: %w", err)
	}
	return plain, nil
}

func (e Encrypted[T]) Validate(b []byte) error {
	plain, err := e.open(b)
	if err != nil {
		return err
	}
	return e.inner.Validate(plain)
}

func (e Encrypted[T]) Decode(b []byte) (T, error) {
	plain, err := e.open(b)
	if err != nil {
		var zero T
		return zero, err
	}
	return e.inner.Decode(plain)
}

func (e Encrypted[T]) Encode(v T) ([]byte, error) {
	plain, err := e.inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return e.enc.Encrypt(plain)
}

func (e Encrypted[T]) Format(v T) string { return e.inner.Format(v) }
