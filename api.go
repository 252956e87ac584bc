// Package signalz provides typed, synchronous signals: in-process
// publish/subscribe with ordered and reentrant-safe dispatch.
//
// Features:
//   - Handlers run in ascending order, ties in connection order
//   - Handlers may connect, disconnect, mute or re-emit during dispatch
//   - Handles (Connection) that stay safe after the subscription is gone
//   - Collectors that aggregate handler results or stop dispatch early
//
// Basic Usage:
//
//	// Create a signal carrying the event payload
//	saved := signalz.New[Document]()
//
//	// Subscribe
//	conn := saved.Connect(func(doc Document) {
//		index.Update(doc)
//	})
//	defer conn.Disconnect()
//
//	// Publish; returns once every handler has run
//	saved.Emit(doc)
//
// Ordering:
//
//	saved.Connect(audit, signalz.WithOrder(-10))  // runs first
//	saved.Connect(notify)                         // order 0
//	saved.Connect(metrics, signalz.WithOrder(10)) // runs last
//
// Collecting Results:
//
//	// Handlers that return a value are connected to a ResultSignal
//	closing := signalz.NewResult[*Window, bool]()
//	closing.Connect(func(w *Window) bool { return !w.Dirty() })
//
//	// Stop at the first handler that vetoes
//	veto := signalz.NewUntilFalseCollector(closing)
//	veto.Emit(win)
//	if veto.Result() {
//		win.Close()
//	}
//
// Reentrancy:
//
// A handler connected while the signal is emitting is not called by
// that emission nor by emissions nested inside it; it becomes eligible
// once the outermost emission returns. A handler removed during an
// emission is never called again, including by the pass that removed
// it. A panicking handler propagates to the caller of Emit and leaves
// the signal consistent.
//
// Signals are not safe for concurrent use. Metrics and Count may be read
// from other goroutines.
package signalz
