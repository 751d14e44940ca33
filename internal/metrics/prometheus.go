package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus records codec activity as Prometheus counters.
type Prometheus struct {
	ops      *prometheus.CounterVec
	elements *prometheus.CounterVec
	bytes    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	interned *prometheus.CounterVec
}

// NewPrometheus creates the codec collectors under namespace and registers
// them with reg. A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "colser"
	}
	p := &Prometheus{
		ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "operations_total",
				Help:      "Collection encode and decode calls.",
			},
			[]string{"kind", "op"},
		),
		elements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "elements_total",
				Help:      "Elements written or read by collection codecs.",
			},
			[]string{"kind", "op"},
		),
		bytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "bytes_total",
				Help:      "Frame bytes written or read by collection codecs.",
			},
			[]string{"kind", "op"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "codec",
				Name:      "errors_total",
				Help:      "Failed collection encode and decode calls.",
			},
			[]string{"kind", "op"},
		),
		interned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "registry",
				Name:      "lookups_total",
				Help:      "Registry lookups, split by whether a codec was created.",
			},
			[]string{"kind", "created"},
		),
	}
	for _, c := range []prometheus.Collector{p.ops, p.elements, p.bytes, p.errors, p.interned} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Prometheus) record(kind, op string, elements, bytes int) {
	p.ops.WithLabelValues(kind, op).Inc()
	p.elements.WithLabelValues(kind, op).Add(float64(elements))
	p.bytes.WithLabelValues(kind, op).Add(float64(bytes))
}

// RecordEncode counts one successful encode.
func (p *Prometheus) RecordEncode(kind string, elements, bytes int) {
	p.record(kind, "encode", elements, bytes)
}

// RecordDecode counts one successful decode.
func (p *Prometheus) RecordDecode(kind string, elements, bytes int) {
	p.record(kind, "decode", elements, bytes)
}

// RecordError counts one failed operation.
func (p *Prometheus) RecordError(kind, op string) {
	p.errors.WithLabelValues(kind, op).Inc()
}

// RecordIntern counts one registry lookup.
func (p *Prometheus) RecordIntern(kind string, created bool) {
	p.interned.WithLabelValues(kind, strconv.FormatBool(created)).Inc()
}
