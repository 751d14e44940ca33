package colser

// ElementCodec converts one collection element to and from its wire bytes.
//
// Decode is only called on bytes that passed Validate. Implementations must be
// safe for concurrent use. Registries intern collection codecs by comparing
// ElementCodec values with ==, so an implementation's equality decides
// whether two separately constructed codecs share a collection codec:
// pointer codecs by identity, struct codecs by field values.
type ElementCodec[T any] interface {
	// Validate reports whether b is a well-formed encoding of a T.
	Validate(b []byte) error
	// Decode converts validated bytes into a value.
	Decode(b []byte) (T, error)
	// Encode converts a value into bytes.
	Encode(v T) ([]byte, error)
	// Format renders a value as human-readable text.
	Format(v T) string
}
