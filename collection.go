package colser

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/AndrewDonelson/colser/internal/frame"
	"github.com/AndrewDonelson/colser/internal/metrics"
)

// Kind identifies the container semantics of a collection codec.
type Kind int

const (
	KindSet  Kind = iota // ordered set, duplicates collapse
	KindList             // sequence, duplicates kept
)

func (k Kind) String() string {
	switch k {
	case KindSet:
		return "set"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// TypeTag describes the collection type a codec produces, e.g. set<string>.
type TypeTag struct {
	Kind Kind
	Elem reflect.Type
}

func (t TypeTag) String() string {
	return fmt.Sprintf("%s<%v>", t.Kind, t.Elem)
}

func tagOf[T any](k Kind) TypeTag {
	return TypeTag{Kind: k, Elem: reflect.TypeFor[T]()}
}

// separator joins formatted elements.
const separator = "; "

// encodeElements encodes n values and packs them into one frame. The count
// is checked before any element is encoded.
func encodeElements[T any](elems ElementCodec[T], n int, values iter.Seq[T]) ([]byte, error) {
	if err := frame.CheckCount(n); err != nil {
		return nil, err
	}
	segments := make([][]byte, 0, n)
	i := 0
	for v := range values {
		seg, err := elems.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrEncodeFailed, i, err)
		}
		if err := frame.CheckSegment(i, seg); err != nil {
			return nil, err
		}
		segments = append(segments, seg)
		i++
	}
	return frame.Pack(segments)
}

// decodeElements unpacks b and hands each validated, decoded element to add
// in wire order. It stops at the first bad segment.
func decodeElements[T any](elems ElementCodec[T], b []byte, add func(T)) (int, error) {
	segments, err := frame.Unpack(b)
	if err != nil {
		index := -1
		var te *frame.TruncatedError
		if errors.As(err, &te) {
			index = te.Index
		}
		return 0, malformed(index, err)
	}
	for i, seg := range segments {
		if err := elems.Validate(seg); err != nil {
			return 0, malformed(i, err)
		}
		v, err := elems.Decode(seg)
		if err != nil {
			return 0, malformed(i, err)
		}
		add(v)
	}
	return len(segments), nil
}

// countHint returns a preallocation size for b, bounded by the number of
// length fields b could actually hold.
func countHint(b []byte) (int, error) {
	n, err := frame.Count(b)
	if err != nil {
		return 0, err
	}
	return min(n, (len(b)-frame.LenSize)/frame.LenSize), nil
}

func formatElements[T any](elems ElementCodec[T], values iter.Seq[T]) string {
	var sb strings.Builder
	first := true
	for v := range values {
		if !first {
			sb.WriteString(separator)
		}
		first = false
		sb.WriteString(elems.Format(v))
	}
	return sb.String()
}

// observer reports codec activity for one collection kind.
type observer struct {
	kind    string
	metrics metrics.MetricsRecorder
}

func newObserver(k Kind, m metrics.MetricsRecorder) observer {
	if m == nil {
		m = metrics.Noop{}
	}
	return observer{kind: k.String(), metrics: m}
}

func (o observer) encoded(elements int, out []byte, err error) {
	if err != nil {
		o.metrics.RecordError(o.kind, "encode")
		return
	}
	o.metrics.RecordEncode(o.kind, elements, len(out))
}

func (o observer) decoded(elements int, in []byte, err error) {
	if err != nil {
		o.metrics.RecordError(o.kind, "decode")
		return
	}
	o.metrics.RecordDecode(o.kind, elements, len(in))
}
