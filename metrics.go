package drmcore

import (
	"sync/atomic"
	"time"
)

// LatencyBuckets defines the commit-latency histogram buckets in
// nanoseconds, from 10us to 1s.
var LatencyBuckets = []uint64{
	10_000,        // 10us
	100_000,       // 100us
	1_000_000,     // 1ms
	10_000_000,    // 10ms
	16_666_667,    // one 60Hz frame
	100_000_000,   // 100ms
	1_000_000_000, // 1s
}

const numLatencyBuckets = 7

// Metrics tracks commit and event-delivery statistics for a Device.
type Metrics struct {
	CommitsAccepted atomic.Uint64
	CommitsRejected atomic.Uint64
	TestCommits     atomic.Uint64

	FlipsPosted atomic.Uint64
	ReadsServed atomic.Uint64
	WouldBlocks atomic.Uint64

	QueueDepthTotal atomic.Uint64
	QueueDepthCount atomic.Uint64
	MaxQueueDepth   atomic.Uint32

	TotalCommitLatencyNs atomic.Uint64
	CommitCount          atomic.Uint64

	// LatencyBuckets[i] holds the count of commits with latency <=
	// LatencyBuckets[i] (cumulative).
	LatencyBuckets [numLatencyBuckets]atomic.Uint64

	StartTime atomic.Int64
}

// NewMetrics returns a fresh Metrics with StartTime set to now.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.StartTime.Store(time.Now().UnixNano())
	return m
}

// RecordCommit records one Submit outcome and its latency.
func (m *Metrics) RecordCommit(latencyNs uint64, accepted, testOnly bool) {
	switch {
	case testOnly:
		m.TestCommits.Add(1)
	case accepted:
		m.CommitsAccepted.Add(1)
	default:
		m.CommitsRejected.Add(1)
	}
	m.recordLatency(latencyNs)
}

// RecordFlip records a posted flip-complete event.
func (m *Metrics) RecordFlip() {
	m.FlipsPosted.Add(1)
}

// RecordRead records a completed (non-wouldBlock) File.read.
func (m *Metrics) RecordRead() {
	m.ReadsServed.Add(1)
}

// RecordWouldBlock records a non-blocking read against an empty queue.
func (m *Metrics) RecordWouldBlock() {
	m.WouldBlocks.Add(1)
}

// RecordQueueDepth samples a File's pending-event queue depth.
func (m *Metrics) RecordQueueDepth(depth uint32) {
	m.QueueDepthTotal.Add(uint64(depth))
	m.QueueDepthCount.Add(1)
	for {
		current := m.MaxQueueDepth.Load()
		if depth <= current {
			break
		}
		if m.MaxQueueDepth.CompareAndSwap(current, depth) {
			break
		}
	}
}

func (m *Metrics) recordLatency(latencyNs uint64) {
	m.TotalCommitLatencyNs.Add(latencyNs)
	m.CommitCount.Add(1)
	for i, bucket := range LatencyBuckets {
		if latencyNs <= bucket {
			m.LatencyBuckets[i].Add(1)
		}
	}
}

// MetricsSnapshot is a point-in-time copy of Metrics, safe to read without
// further synchronization.
type MetricsSnapshot struct {
	CommitsAccepted uint64
	CommitsRejected uint64
	TestCommits     uint64

	FlipsPosted uint64
	ReadsServed uint64
	WouldBlocks uint64

	AvgQueueDepth float64
	MaxQueueDepth uint32

	AvgCommitLatencyNs uint64
	UptimeNs           uint64

	LatencyHistogram [numLatencyBuckets]uint64
}

// Snapshot returns a consistent point-in-time copy of m.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		CommitsAccepted: m.CommitsAccepted.Load(),
		CommitsRejected: m.CommitsRejected.Load(),
		TestCommits:     m.TestCommits.Load(),
		FlipsPosted:     m.FlipsPosted.Load(),
		ReadsServed:     m.ReadsServed.Load(),
		WouldBlocks:     m.WouldBlocks.Load(),
		MaxQueueDepth:   m.MaxQueueDepth.Load(),
	}

	if count := m.QueueDepthCount.Load(); count > 0 {
		snap.AvgQueueDepth = float64(m.QueueDepthTotal.Load()) / float64(count)
	}
	if count := m.CommitCount.Load(); count > 0 {
		snap.AvgCommitLatencyNs = m.TotalCommitLatencyNs.Load() / count
	}
	snap.UptimeNs = uint64(time.Now().UnixNano() - m.StartTime.Load())

	for i := 0; i < numLatencyBuckets; i++ {
		snap.LatencyHistogram[i] = m.LatencyBuckets[i].Load()
	}
	return snap
}

// Reset zeroes every counter — useful between test cases.
func (m *Metrics) Reset() {
	m.CommitsAccepted.Store(0)
	m.CommitsRejected.Store(0)
	m.TestCommits.Store(0)
	m.FlipsPosted.Store(0)
	m.ReadsServed.Store(0)
	m.WouldBlocks.Store(0)
	m.QueueDepthTotal.Store(0)
	m.QueueDepthCount.Store(0)
	m.MaxQueueDepth.Store(0)
	m.TotalCommitLatencyNs.Store(0)
	m.CommitCount.Store(0)
	for i := 0; i < numLatencyBuckets; i++ {
		m.LatencyBuckets[i].Store(0)
	}
	m.StartTime.Store(time.Now().UnixNano())
}

// Observer allows pluggable metrics collection beyond the built-in
// Metrics type.
type Observer interface {
	ObserveCommit(latencyNs uint64, accepted, testOnly bool)
	ObserveFlip()
	ObserveRead(wouldBlock bool)
	ObserveQueueDepth(depth uint32)
}

// NoOpObserver discards every observation.
type NoOpObserver struct{}

func (NoOpObserver) ObserveCommit(uint64, bool, bool) {}
func (NoOpObserver) ObserveFlip()                     {}
func (NoOpObserver) ObserveRead(bool)                 {}
func (NoOpObserver) ObserveQueueDepth(uint32)         {}

// MetricsObserver implements Observer by recording into a Metrics.
type MetricsObserver struct {
	metrics *Metrics
}

// NewMetricsObserver returns an Observer that records into m.
func NewMetricsObserver(m *Metrics) *MetricsObserver {
	return &MetricsObserver{metrics: m}
}

func (o *MetricsObserver) ObserveCommit(latencyNs uint64, accepted, testOnly bool) {
	o.metrics.RecordCommit(latencyNs, accepted, testOnly)
}

func (o *MetricsObserver) ObserveFlip() {
	o.metrics.RecordFlip()
}

func (o *MetricsObserver) ObserveRead(wouldBlock bool) {
	if wouldBlock {
		o.metrics.RecordWouldBlock()
		return
	}
	o.metrics.RecordRead()
}

func (o *MetricsObserver) ObserveQueueDepth(depth uint32) {
	o.metrics.RecordQueueDepth(depth)
}

var _ Observer = (*MetricsObserver)(nil)
var _ Observer = (*NoOpObserver)(nil)
