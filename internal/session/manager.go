package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vetrovegor/storefront/pkg/metrics"
	"go.uber.org/zap"
)

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	parent   context.Context
	ttl      time.Duration
	now      func() time.Time
	metrics  *metrics.StorefrontMetrics
	log      *zap.Logger
}

func NewManager(parent context.Context, ttl time.Duration, m *metrics.StorefrontMetrics, log *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		parent:   parent,
		ttl:      ttl,
		now:      time.Now,
		metrics:  m,
		log:      log,
	}
}

// Resolve returns the live session with id when it is bound to slug. A session
// bound to another tenant is closed first, and a fresh session is opened
// whenever no matching one exists. created reports the latter.
func (m *Manager) Resolve(id, slug string) (s *Session, created bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	if existing, ok := m.sessions[id]; ok {
		if existing.Tenant == slug && !existing.Closed() && !m.expired(existing, now) {
			existing.Touch(now)
			return existing, false
		}

		m.log.Info("closing session",
			zap.String("session", id),
			zap.String("tenant", existing.Tenant),
			zap.String("next_tenant", slug),
		)
		m.remove(existing)
	}

	s = New(m.parent, uuid.NewString(), slug, now)
	m.sessions[s.ID] = s
	m.metrics.SetSessions(len(m.sessions))

	return s, true
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	return s, ok
}

// Sweep closes sessions idle for longer than the ttl and returns how many.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	swept := 0

	for _, s := range m.sessions {
		if m.expired(s, now) || s.Closed() {
			m.remove(s)
			swept++
		}
	}

	return swept
}

// Run sweeps expired sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.log.Debug("swept idle sessions", zap.Int("count", n))
			}
		}
	}
}

func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sessions {
		m.remove(s)
	}
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

// PendingRequests counts backend requests still in flight across sessions.
func (m *Manager) PendingRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, s := range m.sessions {
		n += s.Requests.Pending()
	}
	return n
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.LastSeen()) > m.ttl
}

// remove must be called with m.mu held.
func (m *Manager) remove(s *Session) {
	s.Close()
	delete(m.sessions, s.ID)
	m.metrics.SetSessions(len(m.sessions))
}
