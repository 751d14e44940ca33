package types

import (
	"fmt"

	"github.com/AndrewDonelson/colser/internal/codec"
)

// Structured encodes arbitrary values through a reflection-based value
// codec. Validation is a trial decode that also rejects bytes left after
// the value. Use a comparable T for sets.
type Structured[T any] struct {
	c codec.Codec
}

// JSON returns a Structured codec using encoding/json.
func JSON[T any]() Structured[T] { return Structured[T]{c: codec.JSON{}} }

// MsgPack returns a Structured codec using MessagePack.
func MsgPack[T any]() Structured[T] { return Structured[T]{c: codec.MsgPack{}} }

// CBOR returns a Structured codec using canonical CBOR, which encodes equal
// values to equal bytes.
func CBOR[T any]() Structured[T] { return Structured[T]{c: codec.CBOR{}} }

// Name returns the underlying value codec name.
func (s Structured[T]) Name() string { return s.c.Name() }

func (s Structured[T]) Validate(b []byte) error {
	_, err := s.Decode(b)
	return err
}

func (s Structured[T]) Decode(b []byte) (T, error) {
	var v T
	if err := s.c.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("types: %s: %w", s.c.Name(), err)
	}
	return v, nil
}

func (s Structured[T]) Encode(v T) ([]byte, error) {
	b, err := s.c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("types: %s: %w", s.c.Name(), err)
	}
	return b, nil
}

func (s Structured[T]) Format(v T) string { return fmt.Sprintf("%+v", v) }
