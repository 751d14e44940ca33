package colser

import "github.com/AndrewDonelson/colser/internal/metrics"

// SetCodec converts an OrderedSet to and from a collection frame using one
// element codec. It holds no mutable state and is safe for concurrent use.
//
// Layout is <n><s_1><b_1>...<s_n><b_n> where n is the element count, s_i the
// byte length of element i and b_i its bytes; n and s_i are big-endian uint16.
type SetCodec[T comparable] struct {
	elems ElementCodec[T]
	obs   observer
}

// NewSetCodec returns an uninterned set codec. Prefer SetCodecOf when codecs
// are compared by identity elsewhere.
func NewSetCodec[T comparable](elems ElementCodec[T]) *SetCodec[T] {
	return newSetCodec(elems, nil)
}

func newSetCodec[T comparable](elems ElementCodec[T], m metrics.MetricsRecorder) *SetCodec[T] {
	return &SetCodec[T]{elems: elems, obs: newObserver(KindSet, m)}
}

// Elements returns the element codec the set codec is bound to.
func (c *SetCodec[T]) Elements() ElementCodec[T] { return c.elems }

// TypeTag returns set<T>.
func (c *SetCodec[T]) TypeTag() TypeTag { return tagOf[T](KindSet) }

// Decode reads a set from b. Elements whose decoded values are equal collapse
// into the position of the first one. On error no set is returned.
func (c *SetCodec[T]) Decode(b []byte) (*OrderedSet[T], error) {
	hint, _ := countHint(b)
	s := NewOrderedSet[T](hint)
	n, err := decodeElements(c.elems, b, func(v T) { s.Add(v) })
	c.obs.decoded(n, b, err)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that b holds a well-formed set without building it.
func (c *SetCodec[T]) Validate(b []byte) error {
	_, err := decodeElements(c.elems, b, func(T) {})
	return err
}

// Encode writes s in iteration order. A nil set encodes as an empty frame.
func (c *SetCodec[T]) Encode(s *OrderedSet[T]) ([]byte, error) {
	out, err := encodeElements(c.elems, s.Len(), s.All())
	c.obs.encoded(s.Len(), out, err)
	return out, err
}

// Format renders the elements in iteration order separated by "; ".
func (c *SetCodec[T]) Format(s *OrderedSet[T]) string {
	return formatElements(c.elems, s.All())
}
