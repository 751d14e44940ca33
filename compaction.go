package colser

import "github.com/AndrewDonelson/colser/internal/metrics"

// CompactionJob is one unit of background compaction work tracked by
// CompactionMetrics. Use pointer types: jobs are tracked by identity.
type CompactionJob = metrics.CompactionJob

// CompactionOptions configures CompactionMetrics.
type CompactionOptions = metrics.CompactionOptions

// CompactionMetrics tracks active compaction jobs and keeps monotonic totals
// of bytes compacted and jobs completed. It is independent of the codecs.
type CompactionMetrics = metrics.Compactions

// NewCompactionMetrics creates an empty compaction tracker.
func NewCompactionMetrics(opts CompactionOptions) *CompactionMetrics {
	return metrics.NewCompactions(opts)
}
