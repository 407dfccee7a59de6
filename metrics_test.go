package drmcore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	snap := m.Snapshot()
	assert.Zero(t, snap.CommitsAccepted)

	m.RecordCommit(1_000_000, true, false)
	m.RecordCommit(2_000_000, true, false)
	m.RecordCommit(500_000, false, false)
	m.RecordCommit(0, true, true)

	snap = m.Snapshot()
	assert.EqualValues(t, 2, snap.CommitsAccepted)
	assert.EqualValues(t, 1, snap.CommitsRejected)
	assert.EqualValues(t, 1, snap.TestCommits)
}

func TestMetricsFlipsAndReads(t *testing.T) {
	m := NewMetrics()

	m.RecordFlip()
	m.RecordFlip()
	m.RecordRead()
	m.RecordWouldBlock()

	snap := m.Snapshot()
	assert.EqualValues(t, 2, snap.FlipsPosted)
	assert.EqualValues(t, 1, snap.ReadsServed)
	assert.EqualValues(t, 1, snap.WouldBlocks)
}

func TestMetricsQueueDepth(t *testing.T) {
	m := NewMetrics()

	m.RecordQueueDepth(1)
	m.RecordQueueDepth(3)
	m.RecordQueueDepth(2)

	snap := m.Snapshot()
	assert.EqualValues(t, 3, snap.MaxQueueDepth)

	expectedAvg := float64(1+3+2) / 3.0
	assert.InDelta(t, expectedAvg, snap.AvgQueueDepth, 0.01)
}

func TestMetricsLatency(t *testing.T) {
	m := NewMetrics()

	m.RecordCommit(1_000_000, true, false)
	m.RecordCommit(2_000_000, true, false)

	snap := m.Snapshot()
	assert.EqualValues(t, 1_500_000, snap.AvgCommitLatencyNs)
}

func TestMetricsUptime(t *testing.T) {
	m := NewMetrics()

	time.Sleep(10 * time.Millisecond)

	snap := m.Snapshot()
	assert.GreaterOrEqual(t, snap.UptimeNs, uint64(10*1_000_000))
}

func TestMetricsReset(t *testing.T) {
	m := NewMetrics()

	m.RecordCommit(1_000_000, true, false)
	m.RecordQueueDepth(5)

	require.NotZero(t, m.Snapshot().CommitsAccepted, "expected a recorded commit before reset")

	m.Reset()

	snap := m.Snapshot()
	assert.Zero(t, snap.CommitsAccepted)
	assert.Zero(t, snap.MaxQueueDepth)
}

func TestObserver(t *testing.T) {
	observer := &NoOpObserver{}
	observer.ObserveCommit(1_000_000, true, false)
	observer.ObserveFlip()
	observer.ObserveRead(false)
	observer.ObserveQueueDepth(1)

	m := NewMetrics()
	metricsObserver := NewMetricsObserver(m)

	metricsObserver.ObserveCommit(1_000_000, true, false)
	metricsObserver.ObserveFlip()
	metricsObserver.ObserveRead(true)

	snap := m.Snapshot()
	assert.EqualValues(t, 1, snap.CommitsAccepted)
	assert.EqualValues(t, 1, snap.FlipsPosted)
	assert.EqualValues(t, 1, snap.WouldBlocks)
}

func TestMetricsHistogram(t *testing.T) {
	m := NewMetrics()

	for i := 0; i < 50; i++ {
		m.RecordCommit(500_000, true, false) // 500us
	}
	for i := 0; i < 49; i++ {
		m.RecordCommit(5_000_000, true, false) // 5ms
	}
	m.RecordCommit(50_000_000, true, false) // 50ms

	snap := m.Snapshot()
	var totalInBuckets uint64
	for _, count := range snap.LatencyHistogram {
		totalInBuckets += count
	}
	assert.NotZero(t, totalInBuckets, "expected histogram buckets to be populated")
}
