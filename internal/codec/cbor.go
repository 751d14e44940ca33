package codec

import "github.com/fxamacker/cbor/v2"

var (
	cborEnc, _ = cbor.CanonicalEncOptions().EncMode()
	cborDec, _ = cbor.DecOptions{}.DecMode()
)

// CBOR is a deterministic value codec using canonical CBOR (RFC 8949).
// Canonical encoding keeps map keys sorted so equal values produce equal
// segments.
type CBOR struct{}

// Marshal serializes v to canonical CBOR bytes.
func (CBOR) Marshal(v any) ([]byte, error) {
	return cborEnc.Marshal(v)
}

// Unmarshal deserializes CBOR bytes into v.
func (CBOR) Unmarshal(data []byte, v any) error {
	return cborDec.Unmarshal(data, v)
}

// Name returns "cbor".
func (CBOR) Name() string { return "cbor" }
