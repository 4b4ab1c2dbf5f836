package session

import (
	"context"
	"sync"
	"time"

	"github.com/vetrovegor/storefront/internal/cart"
	"github.com/vetrovegor/storefront/internal/catalog"
	"github.com/vetrovegor/storefront/internal/checkout"
	"github.com/vetrovegor/storefront/internal/customer"
	"github.com/vetrovegor/storefront/internal/schedule"
	"github.com/vetrovegor/storefront/internal/tenant"
	"github.com/vetrovegor/storefront/pkg/latest"
)

// Session is one browser's visit to one tenant. It owns every piece of
// mutable state the storefront keeps for that visit. Its context is
// cancelled when the session closes, which abandons in-flight backend calls.
type Session struct {
	ID     string
	Tenant string

	Gate      *schedule.Gate
	Catalog   *catalog.Selection
	Cart      *cart.Store
	Customers *customer.Lookup
	Checkout  *checkout.Machine
	Requests  *latest.Tracker

	ctx    context.Context
	cancel context.CancelFunc

	loadOnce sync.Once

	mu            sync.RWMutex
	establishment tenant.Establishment
	loaded        bool
	lastSeen      time.Time
}

func New(parent context.Context, id, slug string, now time.Time) *Session {
	ctx, cancel := context.WithCancel(parent)

	return &Session{
		ID:        id,
		Tenant:    slug,
		Gate:      schedule.NewGate(),
		Catalog:   catalog.NewSelection(),
		Cart:      cart.NewStore(),
		Customers: customer.NewLookup(),
		Checkout:  checkout.NewMachine(),
		Requests:  latest.New(ctx),
		ctx:       ctx,
		cancel:    cancel,
		lastSeen:  now,
	}
}

func (s *Session) Context() context.Context {
	return s.ctx
}

func (s *Session) Close() {
	s.cancel()
}

func (s *Session) Closed() bool {
	return s.ctx.Err() != nil
}

// Load runs fn once for the lifetime of the session. Concurrent callers wait
// for the first one to finish.
func (s *Session) Load(fn func(ctx context.Context) tenant.Establishment) tenant.Establishment {
	s.loadOnce.Do(func() {
		est := fn(s.ctx)

		s.mu.Lock()
		s.establishment = est
		s.loaded = true
		s.mu.Unlock()
	})

	est, _ := s.Establishment()
	return est
}

func (s *Session) Establishment() (tenant.Establishment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.establishment, s.loaded
}

func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.After(s.lastSeen) {
		s.lastSeen = now
	}
}

func (s *Session) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastSeen
}
