package signalz

import (
	"log/slog"

	"github.com/zoobzio/clockz"
)

// Option configures a signal during creation.
type Option func(*config)

// config holds internal configuration for signal creation.
type config struct {
	name     string
	clock    clockz.Clock // Time abstraction for deterministic testing
	logger   *slog.Logger
	strategy InsertStrategy
}

func defaultConfig() config {
	return config{
		clock:    clockz.RealClock,
		strategy: InsertFromBack,
	}
}

// WithName labels the signal. The name is attached to log records
// and returned by Name.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithClock sets the clock used to measure emission duration.
// Default is clockz.RealClock for production use.
// Use a clockz fake clock for deterministic testing.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithLogger sets a structured logger. By default a signal does not log.
//
// Logging is kept off the dispatch path: only bulk disconnects (debug)
// and emissions aborted by a panicking handler (warn) are reported.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithInsertStrategy selects how Connect locates the insertion point
// in the priority ring. Every strategy yields the same dispatch order.
func WithInsertStrategy(strategy InsertStrategy) Option {
	return func(c *config) {
		c.strategy = strategy
	}
}

// ConnectOption configures a single connection.
type ConnectOption func(*connectConfig)

type connectConfig struct {
	order int
	once  bool
}

// WithOrder sets the dispatch priority of a handler. Handlers with a
// lower order run earlier; equal orders run in connection order.
// The default order is 0.
func WithOrder(order int) ConnectOption {
	return func(c *connectConfig) {
		c.order = order
	}
}

// WithOnce makes the connection disconnect itself right before its
// first invocation. The handler therefore runs at most once, even if
// it re-emits the signal.
func WithOnce() ConnectOption {
	return func(c *connectConfig) {
		c.once = true
	}
}
