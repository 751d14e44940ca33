package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AndrewDonelson/colser/internal/clock"
	"github.com/prometheus/client_golang/prometheus"
)

// CompactionJob is one unit of background compaction work.
// Jobs are tracked by identity, so implementations should be pointer types.
type CompactionJob interface {
	Started()
	Finished()
	TotalBytes() int64
}

// CompactionOptions configures a Compactions tracker.
type CompactionOptions struct {
	Namespace string
	Clock     clock.Clock
	Buckets   []float64
	// Pending reports how many compactions are queued but not yet begun.
	// Nil means the caller does not track a backlog.
	Pending func() int
}

type activeJob struct {
	seq   uint64
	start time.Time
}

// Compactions tracks running compaction jobs and keeps monotonic totals.
type Compactions struct {
	mu     sync.Mutex
	active map[CompactionJob]activeJob
	seq    uint64

	bytes     atomic.Int64
	completed atomic.Int64

	clock    clock.Clock
	duration prometheus.Histogram
	opts     CompactionOptions
}

// NewCompactions creates an empty tracker.
func NewCompactions(opts CompactionOptions) *Compactions {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Namespace == "" {
		opts.Namespace = "colser"
	}
	if len(opts.Buckets) == 0 {
		opts.Buckets = prometheus.ExponentialBuckets(0.1, 4, 8)
	}
	return &Compactions{
		active: make(map[CompactionJob]activeJob),
		clock:  opts.Clock,
		opts:   opts,
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Subsystem: "compaction",
			Name:      "duration_seconds",
			Help:      "Wall time of finished compactions.",
			Buckets:   opts.Buckets,
		}),
	}
}

// Begin notifies job that it started and marks it active.
func (c *Compactions) Begin(job CompactionJob) {
	job.Started()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.active[job] = activeJob{seq: c.seq, start: c.clock.Now()}
}

// Finish notifies job that it finished, marks it inactive and folds its
// total into the counters.
func (c *Compactions) Finish(job CompactionJob) {
	job.Finished()
	c.mu.Lock()
	aj, ok := c.active[job]
	delete(c.active, job)
	c.mu.Unlock()

	if ok {
		c.duration.Observe(c.clock.Now().Sub(aj.start).Seconds())
	}
	c.bytes.Add(job.TotalBytes())
	c.completed.Add(1)
}

// Active returns a copy of the running jobs in the order they began.
func (c *Compactions) Active() []CompactionJob {
	c.mu.Lock()
	type pair struct {
		job CompactionJob
		seq uint64
	}
	pairs := make([]pair, 0, len(c.active))
	for j, aj := range c.active {
		pairs = append(pairs, pair{job: j, seq: aj.seq})
	}
	c.mu.Unlock()

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].seq < pairs[j].seq })
	out := make([]CompactionJob, len(pairs))
	for i, p := range pairs {
		out[i] = p.job
	}
	return out
}

// ActiveCount returns the number of running jobs.
func (c *Compactions) ActiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.active)
}

// Pending returns the caller's queued compaction count, or 0 when no
// Pending func was configured.
func (c *Compactions) Pending() int {
	if c.opts.Pending == nil {
		return 0
	}
	return max(c.opts.Pending(), 0)
}

// BytesCompacted returns the total bytes reported by finished jobs.
func (c *Compactions) BytesCompacted() int64 { return c.bytes.Load() }

// Completed returns the number of finished jobs.
func (c *Compactions) Completed() int64 { return c.completed.Load() }

// Collectors returns the Prometheus collectors backed by this tracker.
func (c *Compactions) Collectors() []prometheus.Collector {
	ns := c.opts.Namespace
	return []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "compaction",
			Name:      "active_tasks",
			Help:      "Compactions currently running.",
		}, func() float64 { return float64(c.ActiveCount()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "compaction",
			Name:      "pending_tasks",
			Help:      "Compactions queued but not yet running.",
		}, func() float64 { return float64(c.Pending()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "compaction",
			Name:      "bytes_compacted_total",
			Help:      "Bytes compacted since start.",
		}, func() float64 { return float64(c.BytesCompacted()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "compaction",
			Name:      "completed_total",
			Help:      "Compactions completed since start.",
		}, func() float64 { return float64(c.Completed()) }),
		c.duration,
	}
}

// Register registers Collectors with reg.
func (c *Compactions) Register(reg prometheus.Registerer) error {
	for _, col := range c.Collectors() {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}
