package checkout

import (
	"sync"

	"github.com/vetrovegor/storefront/internal/apperror"
)

type State int

const (
	StateEditing State = iota
	StateValidating
	StateSubmitting
	StateConfirmed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Machine is the per-session checkout state. Only one submission may be in
// flight; BeginValidation refuses while validating or submitting.
type Machine struct {
	mu           sync.RWMutex
	state        State
	roster       Roster
	confirmation *Confirmation
	lastErr      string
}

func NewMachine() *Machine {
	return &Machine{state: StateEditing}
}

func (m *Machine) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

func (m *Machine) BeginValidation() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateValidating, StateSubmitting:
		return apperror.ErrSubmitInProgress
	}

	m.state = StateValidating
	m.lastErr = ""

	return nil
}

// Reject ends a validation attempt that did not pass.
func (m *Machine) Reject() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateValidating {
		m.state = StateEditing
	}
}

func (m *Machine) BeginSubmit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateValidating {
		return false
	}

	m.state = StateSubmitting
	return true
}

func (m *Machine) Confirm(c Confirmation) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c.CustomerName == "" {
		c.CustomerName = DefaultCustomerName
	}

	m.state = StateConfirmed
	m.confirmation = &c
}

func (m *Machine) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = StateFailed
	if err != nil {
		m.lastErr = err.Error()
	}
}

// Resume brings a failed or confirmed checkout back to Editing. The last error
// stays readable until the next attempt.
func (m *Machine) Resume() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateFailed || m.state == StateConfirmed {
		m.state = StateEditing
	}
	return m.state
}

func (m *Machine) LastError() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.lastErr
}

func (m *Machine) Confirmation() (Confirmation, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.confirmation == nil {
		return Confirmation{}, false
	}
	return *m.confirmation, true
}

func (m *Machine) SetRoster(r Roster) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.roster = r
}

func (m *Machine) Roster() Roster {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.roster
}
