package drmcore

import (
	"sync"

	"github.com/vellum-os/drmcore/internal/memio"
)

// MockConfiguration is a Configuration that accepts by default (RejectNext
// makes one Capture fail) and completes immediately, counting Capture and
// Commit calls and keeping the most recently captured state for test
// assertion. Useful for exercising the prepare-validate-commit pipeline
// without a real driver.
type MockConfiguration struct {
	mu sync.Mutex

	accept bool // Capture's return value; defaults to true via NewMockConfiguration

	captureCalls int
	commitCalls  int
	lastState    *AtomicState

	done chan struct{}
}

// NewMockConfiguration returns a Configuration that captures every state
// and completes each Commit synchronously.
func NewMockConfiguration() *MockConfiguration {
	c := &MockConfiguration{accept: true, done: make(chan struct{})}
	close(c.done)
	return c
}

// RejectNext makes the next Capture call return false.
func (c *MockConfiguration) RejectNext() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accept = false
}

// Capture implements Configuration.
func (c *MockConfiguration) Capture(state *AtomicState) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.captureCalls++
	c.lastState = state
	accepted := c.accept
	c.accept = true // one-shot rejection, like a driver re-evaluating fresh state each time
	return accepted
}

// Commit implements Configuration.
func (c *MockConfiguration) Commit(state *AtomicState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commitCalls++
}

// WaitForCompletion implements Configuration, resolving immediately.
func (c *MockConfiguration) WaitForCompletion() <-chan struct{} {
	return c.done
}

// CaptureCalls returns how many times Capture has been invoked.
func (c *MockConfiguration) CaptureCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.captureCalls
}

// CommitCalls returns how many times Commit has been invoked.
func (c *MockConfiguration) CommitCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commitCalls
}

// LastState returns the AtomicState passed to the most recent Capture.
func (c *MockConfiguration) LastState() *AtomicState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastState
}

// MockLane is an in-memory Lane: pushed sub-lanes and memory regions are
// recorded for assertion instead of being transported anywhere.
type MockLane struct {
	mu         sync.Mutex
	subLanes   []Lane
	regions    []*memio.Region
	descriptor uintptr
}

// NewMockLane returns a Lane whose pushes/pulls are recorded in memory.
func NewMockLane(descriptor uintptr) *MockLane {
	return &MockLane{descriptor: descriptor}
}

// PushSubLane implements Lane.
func (l *MockLane) PushSubLane(sub Lane) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subLanes = append(l.subLanes, sub)
	return nil
}

// PushMemory implements Lane.
func (l *MockLane) PushMemory(region *memio.Region) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.regions = append(l.regions, region)
	return nil
}

// PullDescriptor implements Lane, returning the descriptor this mock was
// constructed with.
func (l *MockLane) PullDescriptor() (uintptr, error) {
	return l.descriptor, nil
}

// PushedSubLanes returns every sub-lane passed to PushSubLane, in order.
func (l *MockLane) PushedSubLanes() []Lane {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Lane, len(l.subLanes))
	copy(out, l.subLanes)
	return out
}

// PushedRegions returns every region passed to PushMemory, in order.
func (l *MockLane) PushedRegions() []*memio.Region {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*memio.Region, len(l.regions))
	copy(out, l.regions)
	return out
}
