// Package metrics provides the MetricsRecorder interface, a noop
// implementation, a Prometheus-backed recorder and the compaction tracker.
package metrics

// MetricsRecorder is the interface for recording codec activity.
type MetricsRecorder interface {
	RecordEncode(kind string, elements, bytes int)
	RecordDecode(kind string, elements, bytes int)
	RecordError(kind, op string)
	RecordIntern(kind string, created bool)
}

// Noop is a MetricsRecorder that discards all data.
type Noop struct{}

func (Noop) RecordEncode(kind string, elements, bytes int) {}
func (Noop) RecordDecode(kind string, elements, bytes int) {}
func (Noop) RecordError(kind, op string)                   {}
func (Noop) RecordIntern(kind string, created bool)        {}
