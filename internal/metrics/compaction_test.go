package metrics_test

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AndrewDonelson/colser/internal/clock"
	"github.com/AndrewDonelson/colser/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type job struct {
	total    int64
	started  atomic.Int32
	finished atomic.Int32
}

func (j *job) Started()          { j.started.Add(1) }
func (j *job) Finished()         { j.finished.Add(1) }
func (j *job) TotalBytes() int64 { return j.total }

func TestCompactions_BeginFinish(t *testing.T) {
	clk := clock.NewMock(time.Time{})
	c := metrics.NewCompactions(metrics.CompactionOptions{Clock: clk})

	a, b := &job{total: 100}, &job{total: 50}
	c.Begin(a)
	c.Begin(b)
	assert.Equal(t, []metrics.CompactionJob{a, b}, c.Active())
	assert.Equal(t, int32(1), a.started.Load())

	clk.Advance(2 * time.Second)
	c.Finish(a)
	assert.Equal(t, []metrics.CompactionJob{b}, c.Active())
	assert.Equal(t, int32(1), a.finished.Load())
	assert.Equal(t, int64(100), c.BytesCompacted())
	assert.Equal(t, int64(1), c.Completed())

	c.Finish(b)
	assert.Empty(t, c.Active())
	assert.Equal(t, int64(150), c.BytesCompacted())
	assert.Equal(t, int64(2), c.Completed())
}

func TestCompactions_IdentityTracking(t *testing.T) {
	c := metrics.NewCompactions(metrics.CompactionOptions{})
	a, b := &job{total: 1}, &job{total: 1}
	c.Begin(a)
	c.Begin(b)
	assert.Equal(t, 2, c.ActiveCount(), "equal-valued jobs are distinct handles")
}

func TestCompactions_ActiveIsCopy(t *testing.T) {
	c := metrics.NewCompactions(metrics.CompactionOptions{})
	a := &job{}
	c.Begin(a)
	snap := c.Active()
	c.Finish(a)
	assert.Len(t, snap, 1)
	assert.Empty(t, c.Active())
}

func TestCompactions_Concurrent(t *testing.T) {
	c := metrics.NewCompactions(metrics.CompactionOptions{})
	const workers, perWorker = 16, 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				j := &job{total: 10}
				c.Begin(j)
				_ = c.Active()
				c.Finish(j)
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, c.Active())
	assert.Equal(t, int64(workers*perWorker), c.Completed())
	assert.Equal(t, int64(workers*perWorker*10), c.BytesCompacted())
}

func TestCompactions_Register(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	c := metrics.NewCompactions(metrics.CompactionOptions{Namespace: "test"})
	require.NoError(t, c.Register(reg))

	a := &job{total: 42}
	c.Begin(a)
	c.Begin(&job{})
	c.Finish(a)

	expected := `
# HELP test_compaction_active_tasks Compactions currently running.
# TYPE test_compaction_active_tasks gauge
test_compaction_active_tasks 1
# HELP test_compaction_bytes_compacted_total Bytes compacted since start.
# TYPE test_compaction_bytes_compacted_total counter
test_compaction_bytes_compacted_total 42
# HELP test_compaction_completed_total Compactions completed since start.
# TYPE test_compaction_completed_total counter
test_compaction_completed_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"test_compaction_active_tasks",
		"test_compaction_bytes_compacted_total",
		"test_compaction_completed_total",
	))

	n, err := testutil.GatherAndCount(reg, "test_compaction_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Error(t, c.Register(reg), "second registration must collide")
}

func TestCompactions_Pending(t *testing.T) {
	assert.Zero(t, metrics.NewCompactions(metrics.CompactionOptions{}).Pending())

	var queued atomic.Int64
	queued.Store(3)
	reg := prometheus.NewPedanticRegistry()
	c := metrics.NewCompactions(metrics.CompactionOptions{
		Namespace: "test",
		Pending:   func() int { return int(queued.Load()) },
	})
	require.NoError(t, c.Register(reg))
	assert.Equal(t, 3, c.Pending())

	queued.Store(1)
	expected := `
# HELP test_compaction_pending_tasks Compactions queued but not yet running.
# TYPE test_compaction_pending_tasks gauge
test_compaction_pending_tasks 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"test_compaction_pending_tasks"))

	queued.Store(-2)
	assert.Zero(t, c.Pending(), "negative backlog clamps to zero")
}
