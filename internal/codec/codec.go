// Package codec provides reflection-based value codecs used to build
// element codecs for structured values.
package codec

import "errors"

// ErrTrailingData is returned when input continues past the decoded value.
var ErrTrailingData = errors.New("codec: trailing data after value")

// Codec encodes and decodes whole values to a self-describing byte form.
type Codec interface {
	// Marshal serializes v into bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes data into v (must be a pointer).
	Unmarshal(data []byte, v any) error
	// Name returns the codec identifier used for diagnostics and type tags.
	Name() string
}
