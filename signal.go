package signalz

import (
	"time"

	"github.com/zoobzio/clockz"
)

// core is the handler ring and emission protocol shared by Signal and
// ResultSignal. H is the handler function type.
//
// A core must not be copied after first use: the sentinel links to
// itself.
type core[H any] struct {
	head link[H]

	// cursors holds the prefetched next link of every emission in
	// flight, innermost last. unlink retargets entries in place.
	cursors  []*link[H]
	depth    int
	hasFresh bool

	cfg   config
	stats counters
}

func (c *core[H]) configure(opts []Option) {
	c.cfg = defaultConfig()
	for _, opt := range opts {
		opt(&c.cfg)
	}
	c.lazyInit()
}

// lazyInit closes the empty ring so zero values are ready to use.
func (c *core[H]) lazyInit() {
	if c.head.next != nil {
		return
	}
	c.head.next = &c.head
	c.head.prev = &c.head
	if c.cfg.clock == nil {
		c.cfg.clock = clockz.RealClock
	}
}

// Connect subscribes handler to the signal and returns the handle that
// controls the subscription.
//
// A handler connected while the signal is emitting is not called until
// the outermost emission has returned. Connect panics with
// ErrNilHandler if handler is nil.
func (c *core[H]) Connect(handler H, opts ...ConnectOption) Connection {
	id := handlerID(handler)
	if id == 0 {
		panic(ErrNilHandler)
	}
	c.lazyInit()

	var cc connectConfig
	for _, opt := range opts {
		opt(&cc)
	}

	l := c.insert(handler, id, cc.order)
	l.once = cc.once
	if c.depth > 0 {
		l.fresh = true
		c.hasFresh = true
	}
	c.stats.connections.Add(1)

	return &connection[H]{link: l}
}

// Disconnect removes the first subscription of handler. Handlers are
// matched by function value identity: the same top-level function, or
// the same closure value that was passed to Connect.
//
// It reports false if handler is not connected. Connections previously
// returned for the removed subscription observe the removal.
func (c *core[H]) Disconnect(handler H) bool {
	id := handlerID(handler)
	if id == 0 {
		return false
	}
	c.lazyInit()

	for l := c.head.next; l != &c.head; l = l.next {
		if l.id == id {
			return l.unlink()
		}
	}
	return false
}

// DisconnectAll removes every subscription and returns how many were
// removed. It is safe to call from within a handler.
func (c *core[H]) DisconnectAll() int {
	c.lazyInit()

	n := 0
	for c.head.next != &c.head {
		c.head.next.unlink()
		n++
	}

	if c.cfg.logger != nil && n > 0 {
		c.cfg.logger.Debug("signal disconnected all handlers",
			"signal", c.cfg.name,
			"count", n,
			"depth", c.depth,
		)
	}
	return n
}

// Count returns the number of connected handlers, whether or not they
// are enabled.
func (c *core[H]) Count() int {
	return int(c.stats.connections.Load())
}

// HasConnections reports whether at least one handler is connected.
func (c *core[H]) HasConnections() bool {
	return c.stats.connections.Load() > 0
}

// Name returns the name given with WithName.
func (c *core[H]) Name() string {
	return c.cfg.name
}

// Metrics returns a snapshot of the signal's counters. It is safe to
// call from any goroutine.
func (c *core[H]) Metrics() Metrics {
	return c.stats.snapshot()
}

// dispatch walks the ring once, handing every active handler to call.
// The walk stops early when call returns false.
//
// Bookkeeping runs deferred so a panicking handler still leaves the
// depth, the cursor stack and the fresh flags consistent.
func (c *core[H]) dispatch(call func(H) bool) {
	c.lazyInit()

	var start time.Time
	if c.depth == 0 {
		start = c.cfg.clock.Now()
	}
	c.depth++
	c.cursors = append(c.cursors, nil)
	slot := len(c.cursors) - 1
	c.stats.emissions.Add(1)
	c.stats.observeDepth(c.depth)

	completed := false
	defer func() {
		c.finish(start, completed)
	}()

	for l := c.head.next; l != &c.head; l = c.cursors[slot] {
		c.cursors[slot] = l.next
		if !l.active() {
			continue
		}

		h := l.handler
		if l.once {
			l.unlink()
		}
		c.stats.invocations.Add(1)
		if !call(h) {
			c.stats.interrupted.Add(1)
			break
		}
	}
	completed = true
}

func (c *core[H]) finish(start time.Time, completed bool) {
	c.cursors[len(c.cursors)-1] = nil
	c.cursors = c.cursors[:len(c.cursors)-1]
	c.depth--

	if !completed {
		c.stats.aborted.Add(1)
		if c.cfg.logger != nil {
			c.cfg.logger.Warn("signal emission aborted by panicking handler",
				"signal", c.cfg.name,
				"depth", c.depth+1,
			)
		}
	}

	if c.depth > 0 {
		return
	}
	if c.hasFresh {
		c.clearFresh()
	}
	c.stats.lastEmit.Store(int64(c.cfg.clock.Now().Sub(start)))
}

// Signal is a synchronous event source whose handlers receive a value
// of type T. Use a struct for T when handlers need several arguments.
//
// The zero value is an empty signal ready to use. A Signal is not safe
// for concurrent use, but handlers may freely connect, disconnect and
// re-emit from within an emission.
type Signal[T any] struct {
	core[func(T)]
}

// New creates an empty signal with the given options.
//
// Example:
//
//	clicked := signalz.New[Point](signalz.WithName("button.clicked"))
//	conn := clicked.Connect(func(p Point) { fmt.Println(p) })
//	defer conn.Disconnect()
//	clicked.Emit(Point{X: 1, Y: 2})
func New[T any](opts ...Option) *Signal[T] {
	s := &Signal[T]{}
	s.configure(opts)
	return s
}

// Emit calls every enabled handler with v, in order, and returns when
// the last one has returned. A panic in a handler propagates to the
// caller and skips the remaining handlers.
func (s *Signal[T]) Emit(v T) {
	s.dispatch(func(h func(T)) bool {
		h(v)
		return true
	})
}

// ResultSignal is a Signal whose handlers return a value of type R.
// Plain Emit discards the results; collectors aggregate them.
type ResultSignal[T, R any] struct {
	core[func(T) R]
}

// NewResult creates an empty result signal with the given options.
func NewResult[T, R any](opts ...Option) *ResultSignal[T, R] {
	s := &ResultSignal[T, R]{}
	s.configure(opts)
	return s
}

// Emit calls every enabled handler with v and discards their results.
func (s *ResultSignal[T, R]) Emit(v T) {
	s.dispatch(func(h func(T) R) bool {
		h(v)
		return true
	})
}

// EmitCollecting calls every enabled handler with v and passes each
// result to rh. Dispatch stops as soon as rh.HandleResult returns
// false; the handlers after that point are not called.
func (s *ResultSignal[T, R]) EmitCollecting(rh ResultHandler[R], v T) {
	s.dispatch(func(h func(T) R) bool {
		return rh.HandleResult(h(v))
	})
}
