// Package latest tracks the newest outstanding request per resource key so
// that responses of superseded requests can be dropped.
package latest

import (
	"context"
	"sync"
)

type Tracker struct {
	mu       sync.Mutex
	parent   context.Context
	seq      uint64
	inflight map[string]flight
}

type flight struct {
	id     uint64
	cancel context.CancelFunc
}

// Ticket identifies one request issued through Begin.
type Ticket struct {
	Key string
	id  uint64
}

// New returns a tracker whose requests are all cancelled once parent is done.
func New(parent context.Context) *Tracker {
	return &Tracker{
		parent:   parent,
		inflight: make(map[string]flight),
	}
}

// Begin cancels the in-flight request for key, if any, and registers a new one.
// The returned context ends when ctx ends, when the tracker's parent ends or
// when a newer request for the same key begins.
func (t *Tracker) Begin(ctx context.Context, key string) (context.Context, Ticket) {
	reqCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(t.parent, cancel)

	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.inflight[key]; ok {
		prev.cancel()
	}

	t.seq++
	t.inflight[key] = flight{
		id: t.seq,
		cancel: func() {
			stop()
			cancel()
		},
	}

	return reqCtx, Ticket{Key: key, id: t.seq}
}

// IsLatest reports whether tk is still the newest request for its key.
func (t *Tracker) IsLatest(tk Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, ok := t.inflight[tk.Key]
	return ok && f.id == tk.id
}

// Commit runs apply and retires tk only when tk is still the newest request
// for its key. apply runs under the tracker lock and must not call back into it.
func (t *Tracker) Commit(tk Ticket, apply func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, ok := t.inflight[tk.Key]
	if !ok || f.id != tk.id {
		return false
	}

	delete(t.inflight, tk.Key)
	f.cancel()

	if apply != nil {
		apply()
	}

	return true
}

// Release retires tk without applying a result.
func (t *Tracker) Release(tk Ticket) {
	t.Commit(tk, nil)
}

// Pending returns the number of keys with an outstanding request.
func (t *Tracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.inflight)
}
