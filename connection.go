package signalz

// Connection is the handle returned by Connect. It controls a single
// subscription.
//
// Handles stay safe to use after the subscription is gone, whether it
// was removed through the handle, through Signal.Disconnect or through
// Signal.DisconnectAll: Disconnect reports false and SetEnabled does
// nothing.
//
// Example:
//
//	conn := sig.Connect(handler)
//	conn.SetEnabled(false) // mute without losing the slot in the order
//	conn.SetEnabled(true)
//	conn.Disconnect()
type Connection interface {
	// Disconnect removes the subscription. It reports true only for
	// the call that actually removed it.
	Disconnect() bool

	// Enabled reports whether the handler currently receives
	// emissions. It is false once disconnected, and false for a
	// handler connected during an emission that is still running.
	Enabled() bool

	// SetEnabled mutes or unmutes the handler. Muted handlers keep
	// their position in the dispatch order.
	SetEnabled(enabled bool)

	// Close is Disconnect for io.Closer style cleanup. It returns
	// ErrAlreadyDisconnected if there was nothing to remove.
	Close() error
}

// connection owns a reference to its link until the first Disconnect.
type connection[H any] struct {
	link *link[H]
}

func (c *connection[H]) Disconnect() bool {
	if c.link == nil {
		return false
	}
	l := c.link
	c.link = nil
	return l.unlink()
}

func (c *connection[H]) Enabled() bool {
	return c.link != nil && c.link.active()
}

func (c *connection[H]) SetEnabled(enabled bool) {
	if c.link == nil || !c.link.linked {
		return
	}
	c.link.enabled = enabled
}

func (c *connection[H]) Close() error {
	if !c.Disconnect() {
		return ErrAlreadyDisconnected
	}
	return nil
}

// ConnectionGroup collects connections, possibly from different
// signals, so they can be severed together. The zero value is an empty
// group ready to use.
//
// Example:
//
//	var conns signalz.ConnectionGroup
//	conns.Add(
//		opened.Connect(w.onOpen),
//		closed.Connect(w.onClose),
//	)
//	defer conns.DisconnectAll()
type ConnectionGroup struct {
	conns []Connection
}

// Add appends connections to the group. Duplicates are kept.
func (g *ConnectionGroup) Add(conns ...Connection) {
	g.conns = append(g.conns, conns...)
}

// DisconnectAll disconnects every connection in insertion order and
// empties the group. It returns how many subscriptions were actually
// removed by this call.
func (g *ConnectionGroup) DisconnectAll() int {
	n := 0
	for _, conn := range g.conns {
		if conn.Disconnect() {
			n++
		}
	}
	g.conns = nil
	return n
}

// Count returns the number of connections in the group.
func (g *ConnectionGroup) Count() int {
	return len(g.conns)
}

// IsEmpty reports whether the group holds no connections.
func (g *ConnectionGroup) IsEmpty() bool {
	return len(g.conns) == 0
}
