package signalz

import "unsafe"

// InsertStrategy selects how a new handler finds its place in the ring.
//
// Dispatch order never depends on the strategy: handlers run in
// ascending order and, within one order, in connection order. The
// strategy only changes which end the scan starts from, so pick the
// one matching how orders are usually assigned.
type InsertStrategy int

const (
	// InsertFromBack scans backward from the last handler. Connecting
	// handlers in non-decreasing order is O(1). This is the default.
	InsertFromBack InsertStrategy = iota

	// InsertFromFront scans forward from the first handler. Suited to
	// signals where most handlers are connected with low orders.
	InsertFromFront
)

// String returns the strategy name.
func (s InsertStrategy) String() string {
	switch s {
	case InsertFromBack:
		return "back"
	case InsertFromFront:
		return "front"
	default:
		return "unknown"
	}
}

// link is one subscription in the circular doubly linked ring owned by
// a core. The core's head is a handler-less sentinel, so prev and next
// are never nil while a link is in the ring.
type link[H any] struct {
	prev, next *link[H]
	owner      *core[H]

	handler H
	id      uintptr // identity of handler, see handlerID
	order   int

	enabled bool
	fresh   bool // connected during an emission still in flight
	linked  bool
	once    bool
}

// active reports whether the link takes part in dispatch.
func (l *link[H]) active() bool {
	return l.linked && l.enabled && !l.fresh
}

// insert splices a new link after every link whose order is <= order.
func (c *core[H]) insert(handler H, id uintptr, order int) *link[H] {
	var after *link[H]
	switch c.cfg.strategy {
	case InsertFromFront:
		before := c.head.next
		for before != &c.head && before.order <= order {
			before = before.next
		}
		after = before.prev
	default:
		after = c.head.prev
		for after != &c.head && after.order > order {
			after = after.prev
		}
	}

	l := &link[H]{
		prev:    after,
		next:    after.next,
		owner:   c,
		handler: handler,
		id:      id,
		order:   order,
		enabled: true,
		linked:  true,
	}
	after.next = l
	l.next.prev = l
	return l
}

// unlink removes the link from its ring. It reports false if the link
// had already been removed.
//
// In-flight emissions that prefetched this link as their next step are
// moved on to its successor, so no pass ever steps onto a removed link.
func (l *link[H]) unlink() bool {
	if !l.linked {
		return false
	}
	c := l.owner

	var zero H
	l.handler = zero
	l.linked = false
	l.prev.next = l.next
	l.next.prev = l.prev

	for i, cur := range c.cursors {
		if cur == l {
			c.cursors[i] = l.next
		}
	}
	l.prev, l.next = nil, nil

	c.stats.connections.Add(-1)
	return true
}

// clearFresh makes every link connected during the finished emission
// eligible for dispatch.
func (c *core[H]) clearFresh() {
	for l := c.head.next; l != &c.head; l = l.next {
		l.fresh = false
	}
	c.hasFresh = false
}

// handlerID returns the address of the function value's closure record.
//
// H is always a func type in this package, and a func value is a single
// pointer to its closure. Top-level functions share one static record;
// every evaluation of a capturing function literal or method value
// produces a new one.
func handlerID[H any](h H) uintptr {
	return *(*uintptr)(unsafe.Pointer(&h))
}
