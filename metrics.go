package signalz

import (
	"sync/atomic"
	"time"
)

// Metrics provides observability data for a signal.
// Values are read atomically, so a snapshot may be taken from any
// goroutine while the owner emits.
type Metrics struct {
	// Registration
	Connections int64 // Currently connected handlers, enabled or not

	// Dispatch counters
	Emissions   int64 // Emission passes started, nested ones included
	Invocations int64 // Handler calls
	Interrupted int64 // Passes stopped early by a ResultHandler
	Aborted     int64 // Passes unwound by a panicking handler

	// Reentrancy
	MaxDepth int64 // Deepest emission nesting observed

	// Timing
	LastEmitDuration time.Duration // Wall time of the last outermost pass
}

// counters backs Metrics. The connection count doubles as the live
// count returned by Count.
type counters struct {
	connections atomic.Int64
	emissions   atomic.Int64
	invocations atomic.Int64
	interrupted atomic.Int64
	aborted     atomic.Int64
	maxDepth    atomic.Int64
	lastEmit    atomic.Int64
}

func (c *counters) observeDepth(depth int) {
	d := int64(depth)
	for {
		cur := c.maxDepth.Load()
		if d <= cur || c.maxDepth.CompareAndSwap(cur, d) {
			return
		}
	}
}

func (c *counters) snapshot() Metrics {
	return Metrics{
		Connections:      c.connections.Load(),
		Emissions:        c.emissions.Load(),
		Invocations:      c.invocations.Load(),
		Interrupted:      c.interrupted.Load(),
		Aborted:          c.aborted.Load(),
		MaxDepth:         c.maxDepth.Load(),
		LastEmitDuration: time.Duration(c.lastEmit.Load()),
	}
}
