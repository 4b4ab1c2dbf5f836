package schedule

import (
	"sync"
	"time"
)

// Gate holds the open/closed decision of one browsing session. It is
// re-evaluated only when new schedule data is applied, never on a clock tick.
type Gate struct {
	mu      sync.RWMutex
	status  Status
	entries []Entry
}

func NewGate() *Gate {
	return &Gate{status: StatusPending}
}

// Apply stores the schedule and evaluates it at now.
func (g *Gate) Apply(entries []Entry, now time.Time) Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.entries = append([]Entry(nil), entries...)
	g.status = Evaluate(g.entries, now)

	return g.status
}

func (g *Gate) Status() Status {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.status
}

// Allows reports whether catalog, cart and checkout routes are reachable.
func (g *Gate) Allows() bool {
	return g.Status() != StatusClosed
}

func (g *Gate) Schedule() []Entry {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Entry(nil), g.entries...)
}
