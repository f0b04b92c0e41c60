package signal

// Connection is one subscription on a Signal. It lives in the signal's
// intrusive doubly-linked list; the signal's head pointer is the list's
// only owner and next/prev are navigation references.
type Connection[T any] struct {
	signal     *Signal[T]
	next, prev *Connection[T]
	connected  bool
	fn         Handler[T]
}

func (c *Connection[T]) isConnection() {}

// Connected reports whether the connection is linked into its signal's
// live list. Staged connections report false until they go live.
func (c *Connection[T]) Connected() bool {
	s := c.signal
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.connected
}

// Disconnect unlinks the connection in place and drops its handler so any
// captured state can be collected. Safe to call repeatedly. Unlinking
// mid-dispatch removes the connection from the remainder of the current
// pack's traversal; an already-launched handler cannot be recalled.
func (c *Connection[T]) Disconnect() {
	s := c.signal
	s.mu.Lock()
	defer s.mu.Unlock()
	c.fn = nil
	if !c.connected {
		return
	}
	c.connected = false
	if c.prev != nil {
		c.prev.next = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	}
	if s.head == c {
		s.head = c.next
	}
	// c.next stays put so a traversal parked on this node can step past
	// it; a dead node never re-enters the list.
	c.prev = nil
}
