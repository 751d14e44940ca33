package colser_test

import (
	"errors"
	"strings"
)

// foldCodec stores strings as-is but decodes them lower-cased, so distinct
// segments can decode to equal values.
type foldCodec struct{}

func (foldCodec) Validate([]byte) error           { return nil }
func (foldCodec) Decode(b []byte) (string, error) { return strings.ToLower(string(b)), nil }
func (foldCodec) Encode(v string) ([]byte, error) { return []byte(v), nil }
func (foldCodec) Format(v string) string          { return v }

var errRejected = errors.New("rejected element")

// pickyCodec rejects any segment containing '!' and refuses to encode "boom".
type pickyCodec struct{}

func (pickyCodec) Validate(b []byte) error {
	if strings.ContainsRune(string(b), '!') {
		return errRejected
	}
	return nil
}
func (pickyCodec) Decode(b []byte) (string, error) { return string(b), nil }
func (pickyCodec) Encode(v string) ([]byte, error) {
	if v == "boom" {
		return nil, errRejected
	}
	return []byte(v), nil
}
func (pickyCodec) Format(v string) string { return "<" + v + ">" }

// ptrCodec is compared by identity.
type ptrCodec struct{ name string }

func (*ptrCodec) Validate([]byte) error           { return nil }
func (*ptrCodec) Decode(b []byte) (string, error) { return string(b), nil }
func (*ptrCodec) Encode(v string) ([]byte, error) { return []byte(v), nil }
func (*ptrCodec) Format(v string) string          { return v }

// sliceCodec is not comparable.
type sliceCodec struct{ prefixes []string }

func (sliceCodec) Validate([]byte) error           { return nil }
func (sliceCodec) Decode(b []byte) (string, error) { return string(b), nil }
func (sliceCodec) Encode(v string) ([]byte, error) { return []byte(v), nil }
func (sliceCodec) Format(v string) string          { return v }
