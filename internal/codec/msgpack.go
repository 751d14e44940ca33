package codec

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// MsgPack is a compact value codec using MessagePack encoding.
type MsgPack struct{}

// Marshal serializes v to MessagePack bytes.
func (MsgPack) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal deserializes exactly one MessagePack value from data into v.
// Bytes left over after that value are an error.
func (MsgPack) Unmarshal(data []byte, v any) error {
	r := bytes.NewReader(data)
	if err := msgpack.NewDecoder(r).Decode(v); err != nil {
		return err
	}
	if n := r.Len(); n > 0 {
		return fmt.Errorf("%w: %d bytes after msgpack value", ErrTrailingData, n)
	}
	return nil
}

// Name returns "msgpack".
func (MsgPack) Name() string { return "msgpack" }
