package colser

import (
	"slices"

	"github.com/AndrewDonelson/colser/internal/metrics"
)

// ListCodec converts a slice to and from a collection frame. It shares the
// set layout but keeps duplicates and their positions.
type ListCodec[T any] struct {
	elems ElementCodec[T]
	obs   observer
}

// NewListCodec returns an uninterned list codec.
func NewListCodec[T any](elems ElementCodec[T]) *ListCodec[T] {
	return newListCodec(elems, nil)
}

func newListCodec[T any](elems ElementCodec[T], m metrics.MetricsRecorder) *ListCodec[T] {
	return &ListCodec[T]{elems: elems, obs: newObserver(KindList, m)}
}

// Elements returns the element codec the list codec is bound to.
func (c *ListCodec[T]) Elements() ElementCodec[T] { return c.elems }

// TypeTag returns list<T>.
func (c *ListCodec[T]) TypeTag() TypeTag { return tagOf[T](KindList) }

// Decode reads a list from b. On error no list is returned.
func (c *ListCodec[T]) Decode(b []byte) ([]T, error) {
	n, _ := countHint(b)
	out := make([]T, 0, n)
	got, err := decodeElements(c.elems, b, func(v T) { out = append(out, v) })
	c.obs.decoded(got, b, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Validate checks that b holds a well-formed list without building it.
func (c *ListCodec[T]) Validate(b []byte) error {
	_, err := decodeElements(c.elems, b, func(T) {})
	return err
}

// Encode writes values in order.
func (c *ListCodec[T]) Encode(values []T) ([]byte, error) {
	out, err := encodeElements(c.elems, len(values), slices.Values(values))
	c.obs.encoded(len(values), out, err)
	return out, err
}

// Format renders the elements in order separated by "; ".
func (c *ListCodec[T]) Format(values []T) string {
	return formatElements(c.elems, slices.Values(values))
}
