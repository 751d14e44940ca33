// Package types provides ready-made element codecs for colser collections.
//
// Fixed-width numeric codecs use big-endian byte order. Every codec here is a
// comparable value, so a Registry interns collection codecs for them by value:
// two UTF8{} values share one set codec.
package types

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/AndrewDonelson/colser"
	"github.com/google/uuid"
)

var (
	ErrInvalidLength = errors.New("types: invalid element length")
	ErrInvalidUTF8   = errors.New("types: invalid UTF-8 string")
	ErrInvalidASCII  = errors.New("types: invalid ASCII string")
)

var (
	_ colser.ElementCodec[string]    = UTF8{}
	_ colser.ElementCodec[string]    = ASCII{}
	_ colser.ElementCodec[string]    = Bytes{}
	_ colser.ElementCodec[int32]     = Int32{}
	_ colser.ElementCodec[int64]     = Int64{}
	_ colser.ElementCodec[bool]      = Boolean{}
	_ colser.ElementCodec[float64]   = Double{}
	_ colser.ElementCodec[uuid.UUID] = UUID{}
)

func checkLen(name string, b []byte, want int) error {
	if len(b) != want {
		return fmt.Errorf("%w: %s expects %d bytes, got %d", ErrInvalidLength, name, want, len(b))
	}
	return nil
}

// UTF8 encodes strings as their UTF-8 bytes.
type UTF8 struct{}

func (UTF8) Validate(b []byte) error {
	if !utf8.Valid(b) {
		return ErrInvalidUTF8
	}
	return nil
}

func (UTF8) Decode(b []byte) (string, error) { return string(b), nil }

func (UTF8) Encode(v string) ([]byte, error) {
	if !utf8.ValidString(v) {
		return nil, ErrInvalidUTF8
	}
	return []byte(v), nil
}

func (UTF8) Format(v string) string { return v }

// ASCII encodes 7-bit strings.
type ASCII struct{}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}

func (ASCII) Validate(b []byte) error {
	if !isASCII(string(b)) {
		return ErrInvalidASCII
	}
	return nil
}

func (ASCII) Decode(b []byte) (string, error) { return string(b), nil }

func (ASCII) Encode(v string) ([]byte, error) {
	if !isASCII(v) {
		return nil, ErrInvalidASCII
	}
	return []byte(v), nil
}

func (ASCII) Format(v string) string { return v }

// Bytes carries opaque payloads. Values are held as strings so that they
// stay comparable and can live in an OrderedSet.
type Bytes struct{}

func (Bytes) Validate([]byte) error { return nil }

func (Bytes) Decode(b []byte) (string, error) { return string(b), nil }

func (Bytes) Encode(v string) ([]byte, error) { return []byte(v), nil }

// Format renders the payload as 0x-prefixed hex.
func (Bytes) Format(v string) string { return "0x" + hex.EncodeToString([]byte(v)) }

// Int32 encodes 4-byte big-endian two's complement integers.
type Int32 struct{}

func (Int32) Validate(b []byte) error { return checkLen("int32", b, 4) }

func (Int32) Decode(b []byte) (int32, error) {
	if err := checkLen("int32", b, 4); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (Int32) Encode(v int32) ([]byte, error) {
	return binary.BigEndian.AppendUint32(nil, uint32(v)), nil
}

func (Int32) Format(v int32) string { return strconv.FormatInt(int64(v), 10) }

// Int64 encodes 8-byte big-endian two's complement integers.
type Int64 struct{}

func (Int64) Validate(b []byte) error { return checkLen("int64", b, 8) }

func (Int64) Decode(b []byte) (int64, error) {
	if err := checkLen("int64", b, 8); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (Int64) Encode(v int64) ([]byte, error) {
	return binary.BigEndian.AppendUint64(nil, uint64(v)), nil
}

func (Int64) Format(v int64) string { return strconv.FormatInt(v, 10) }

// Boolean encodes a single byte; any non-zero byte decodes to true.
type Boolean struct{}

func (Boolean) Validate(b []byte) error { return checkLen("boolean", b, 1) }

func (Boolean) Decode(b []byte) (bool, error) {
	if err := checkLen("boolean", b, 1); err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (Boolean) Encode(v bool) ([]byte, error) {
	if v {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

func (Boolean) Format(v bool) string { return strconv.FormatBool(v) }

// Double encodes IEEE-754 binary64 values. NaN never equals itself, so a set
// of doubles may hold more than one NaN.
type Double struct{}

func (Double) Validate(b []byte) error { return checkLen("double", b, 8) }

func (Double) Decode(b []byte) (float64, error) {
	if err := checkLen("double", b, 8); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

func (Double) Encode(v float64) ([]byte, error) {
	return binary.BigEndian.AppendUint64(nil, math.Float64bits(v)), nil
}

func (Double) Format(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// UUID encodes 16-byte UUIDs in network order.
type UUID struct{}

func (UUID) Validate(b []byte) error { return checkLen("uuid", b, 16) }

func (UUID) Decode(b []byte) (uuid.UUID, error) { return uuid.FromBytes(b) }

func (UUID) Encode(v uuid.UUID) ([]byte, error) { return v[:], nil }

func (UUID) Format(v uuid.UUID) string { return v.String() }
