// Package trove collects connections so a whole group can be torn down in
// one call, the usual companion to signal-heavy code where a component
// subscribes to many signals and must release them all on shutdown.
package trove

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Disconnector is anything that can be torn down, most commonly a
// *signal.Connection.
type Disconnector interface {
	Disconnect()
}

// Trove is a deduplicating bag of Disconnectors. It stays usable after
// Clean; a cleaned trove is simply empty.
type Trove struct {
	mu    sync.Mutex
	conns mapset.Set[Disconnector]
}

func New() *Trove {
	return &Trove{conns: mapset.NewSet[Disconnector]()}
}

// Add puts c in the bag and returns it unchanged, so call sites can wrap
// a Connect in place.
func (t *Trove) Add(c Disconnector) Disconnector {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.conns.Add(c)
	return c
}

// Remove drops c from the bag without disconnecting it.
func (t *Trove) Remove(c Disconnector) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.conns.Remove(c)
}

func (t *Trove) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.conns.Cardinality()
}

// Clean disconnects everything in the bag and empties it. Disconnects run
// outside the trove's lock so a Disconnect that re-enters the trove
// cannot deadlock.
func (t *Trove) Clean() {
	t.mu.Lock()
	conns := t.conns.ToSlice()
	t.conns.Clear()
	t.mu.Unlock()

	for _, c := range conns {
		c.Disconnect()
	}
}
