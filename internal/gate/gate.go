package gate

import (
	"context"
	"fmt"

	"audioworks/internal/metrics"
)

// Gate caps the number of simultaneously in-flight operations.
//
// Slots are handed out in queue order: goroutines blocked on Acquire are
// dispatched first-come, first-served as earlier holders release. A Gate is
// safe for concurrent use and never deadlocks for capacities >= 1.
type Gate struct {
	slots chan struct{}
}

// New creates a Gate with the given capacity.
// A capacity below 1 is a configuration error.
func New(capacity int) (*Gate, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("gate: capacity must be >= 1, got %d", capacity)
	}
	metrics.GateCapacity.Set(float64(capacity))
	return &Gate{slots: make(chan struct{}, capacity)}, nil
}

// Acquire blocks until a slot is free or ctx is done.
func (g *Gate) Acquire(ctx context.Context) error {
	metrics.GateWaiting.Inc()
	defer metrics.GateWaiting.Dec()

	select {
	case g.slots <- struct{}{}:
		metrics.GateInFlight.Inc()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot acquired with Acquire.
func (g *Gate) Release() {
	<-g.slots
	metrics.GateInFlight.Dec()
}

// Do runs fn while holding a gate slot, waiting for one if necessary.
// The error from fn is returned unchanged; a context error is returned if
// ctx is done before a slot frees.
func (g *Gate) Do(ctx context.Context, fn func() error) error {
	if err := g.Acquire(ctx); err != nil {
		return err
	}
	defer g.Release()
	return fn()
}

// Capacity returns the configured slot count.
func (g *Gate) Capacity() int {
	return cap(g.slots)
}
