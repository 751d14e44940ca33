// Package frame implements the length-prefixed collection frame.
//
// Layout (all integers big-endian uint16):
//
//	count | size_1 | bytes_1 | ... | size_n | bytes_n
//
// The payload bytes are opaque here; element semantics live with the caller.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// MaxCount is the largest element count a frame can carry.
	MaxCount = 0xFFFF
	// MaxSegmentSize is the largest payload a single segment can carry.
	MaxSegmentSize = 0xFFFF
	// LenSize is the width of the count and size fields.
	LenSize = 2
)

var (
	ErrTruncated        = errors.New("frame: truncated collection frame")
	ErrTrailingBytes    = errors.New("frame: unexpected bytes after last segment")
	ErrCapacityExceeded = errors.New("frame: collection exceeds 16-bit frame capacity")
)

// TruncatedError reports where a frame ran out of bytes.
type TruncatedError struct {
	Field string // "count", "size" or "payload"
	Index int    // segment index, -1 for the count field
	Need  int
	Have  int
}

func (e *TruncatedError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s needs %d bytes, %d available", ErrTruncated, e.Field, e.Need, e.Have)
	}
	return fmt.Sprintf("%v: segment %d %s needs %d bytes, %d available", ErrTruncated, e.Index, e.Field, e.Need, e.Have)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncated }

// Size returns the exact encoded length of segments.
func Size(segments [][]byte) int {
	n := LenSize
	for _, s := range segments {
		n += LenSize + len(s)
	}
	return n
}

// CheckCount reports ErrCapacityExceeded when n elements cannot be framed.
func CheckCount(n int) error {
	if n > MaxCount {
		return fmt.Errorf("%w: %d elements (max %d)", ErrCapacityExceeded, n, MaxCount)
	}
	return nil
}

// CheckSegment reports ErrCapacityExceeded when segment i is too large to frame.
func CheckSegment(i int, seg []byte) error {
	if len(seg) > MaxSegmentSize {
		return fmt.Errorf("%w: segment %d is %d bytes (max %d)", ErrCapacityExceeded, i, len(seg), MaxSegmentSize)
	}
	return nil
}

// Pack writes segments into a single frame. Bounds are checked before any
// byte is written.
func Pack(segments [][]byte) ([]byte, error) {
	if err := CheckCount(len(segments)); err != nil {
		return nil, err
	}
	for i, s := range segments {
		if err := CheckSegment(i, s); err != nil {
			return nil, err
		}
	}

	buf := make([]byte, Size(segments))
	binary.BigEndian.PutUint16(buf[0:LenSize], uint16(len(segments)))
	off := LenSize
	for _, s := range segments {
		binary.BigEndian.PutUint16(buf[off:off+LenSize], uint16(len(s)))
		off += LenSize
		off += copy(buf[off:], s)
	}
	return buf, nil
}

// Unpack splits a frame into its segments. The input is never modified; the
// returned segments alias it with their capacity clipped to their length.
func Unpack(b []byte) ([][]byte, error) {
	c := cursor{buf: b}
	n, err := c.uint16("count", -1)
	if err != nil {
		return nil, err
	}

	segments := make([][]byte, 0, n)
	for i := 0; i < int(n); i++ {
		size, err := c.uint16("size", i)
		if err != nil {
			return nil, err
		}
		seg, err := c.next(int(size), "payload", i)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	if r := c.remaining(); r > 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, r)
	}
	return segments, nil
}

// Count reads only the element count of a frame.
func Count(b []byte) (int, error) {
	c := cursor{buf: b}
	n, err := c.uint16("count", -1)
	return int(n), err
}
