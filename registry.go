package colser

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/AndrewDonelson/colser/internal/metrics"
)

type registryKey struct {
	kind  Kind
	elems any
}

type registryEntry struct {
	codec any
	tag   TypeTag
	elems string
}

// Registry interns collection codecs so that exactly one codec exists per
// (collection kind, element codec) pair. Element codecs are compared with ==,
// which means pointer codecs intern by identity and struct codecs by value.
// Entries are never evicted.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	codecs  map[registryKey]registryEntry
	logger  Logger
	metrics metrics.MetricsRecorder
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg Config) *Registry {
	cfg.defaults()
	return &Registry{
		codecs:  make(map[registryKey]registryEntry),
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// SetCodecOf returns the set codec bound to elems, creating it on first use.
// Concurrent calls with equal element codecs return the same instance.
func SetCodecOf[T comparable](r *Registry, elems ElementCodec[T]) (*SetCodec[T], error) {
	return intern(r, KindSet, elems, func() *SetCodec[T] {
		return newSetCodec(elems, r.metrics)
	})
}

// ListCodecOf returns the list codec bound to elems, creating it on first use.
func ListCodecOf[T any](r *Registry, elems ElementCodec[T]) (*ListCodec[T], error) {
	return intern(r, KindList, elems, func() *ListCodec[T] {
		return newListCodec(elems, r.metrics)
	})
}

// MustSetCodecOf panics if SetCodecOf fails. Useful from init() blocks.
func MustSetCodecOf[T comparable](r *Registry, elems ElementCodec[T]) *SetCodec[T] {
	c, err := SetCodecOf(r, elems)
	if err != nil {
		panic(err)
	}
	return c
}

// MustListCodecOf panics if ListCodecOf fails.
func MustListCodecOf[T any](r *Registry, elems ElementCodec[T]) *ListCodec[T] {
	c, err := ListCodecOf(r, elems)
	if err != nil {
		panic(err)
	}
	return c
}

type taggedCodec interface {
	TypeTag() TypeTag
}

func intern[C taggedCodec](r *Registry, kind Kind, elems any, build func() C) (C, error) {
	var zero C
	if elems == nil {
		return zero, ErrNilElementCodec
	}
	if !reflect.ValueOf(elems).Comparable() {
		return zero, fmt.Errorf("%w: %T", ErrUncomparableCodec, elems)
	}
	key := registryKey{kind: kind, elems: elems}

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.codecs[key]; ok {
		r.metrics.RecordIntern(kind.String(), false)
		return e.codec.(C), nil
	}

	c := build()
	e := registryEntry{codec: c, tag: c.TypeTag(), elems: fmt.Sprintf("%T", elems)}
	r.codecs[key] = e
	r.metrics.RecordIntern(kind.String(), true)
	r.logger.Debug("colser: interned collection codec", "type", e.tag.String(), "elements", e.elems)
	return c, nil
}

// Len returns the number of interned codecs.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.codecs)
}

// Tags returns the type tags of all interned codecs, sorted by their string
// form and then by element codec type.
func (r *Registry) Tags() []TypeTag {
	r.mu.Lock()
	entries := make([]registryEntry, 0, len(r.codecs))
	for _, e := range r.codecs {
		entries = append(entries, e)
	}
	r.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		ti, tj := entries[i].tag.String(), entries[j].tag.String()
		if ti == tj {
			return entries[i].elems < entries[j].elems
		}
		return ti < tj
	})
	tags := make([]TypeTag, len(entries))
	for i, e := range entries {
		tags[i] = e.tag
	}
	return tags
}
