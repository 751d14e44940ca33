package frame

import "encoding/binary"

// cursor is a private read position over a frame. It only ever re-slices
// its own copy of the slice header.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) remaining() int { return len(c.buf) - c.off }

func (c *cursor) next(n int, field string, index int) ([]byte, error) {
	if c.remaining() < n {
		return nil, &TruncatedError{Field: field, Index: index, Need: n, Have: c.remaining()}
	}
	b := c.buf[c.off : c.off+n : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) uint16(field string, index int) (uint16, error) {
	b, err := c.next(LenSize, field, index)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}
