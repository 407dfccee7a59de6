// Package bell implements the event bell: a single-producer/multi-consumer
// wake primitive used by Client Files to suspend readers until an event is
// posted, modeled as an explicit awaitable per spec.md §9's "await event
// bell" suspension point.
package bell

import (
	"context"
	"sync"
)

// Bell lets any number of goroutines wait for the next Raise call, or give
// up early via a context.Context cancellation.
type Bell struct {
	mu   sync.Mutex
	cond *sync.Cond
	gen  uint64
}

// New returns a ready Bell.
func New() *Bell {
	b := &Bell{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Raise wakes every goroutine currently in Wait.
func (b *Bell) Raise() {
	b.mu.Lock()
	b.gen++
	b.mu.Unlock()
	b.cond.Broadcast()
}

// Wait blocks until the next Raise after Wait was called, or until ctx is
// cancelled. It returns ctx.Err() on cancellation, nil otherwise.
func (b *Bell) Wait(ctx context.Context) error {
	b.mu.Lock()
	start := b.gen
	done := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		b.mu.Lock()
		close(done)
		b.mu.Unlock()
		b.cond.Broadcast()
	})
	defer stop()

	for b.gen == start {
		select {
		case <-done:
			b.mu.Unlock()
			return ctx.Err()
		default:
		}
		b.cond.Wait()
	}
	b.mu.Unlock()
	return nil
}
