// Package session manages the lifecycle of portfolio wizard drafts.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matthewbaird/showcase/internal/portfolio"
	"github.com/matthewbaird/showcase/internal/types"
	"go.uber.org/zap"
)

// ErrSubmitting is returned when a draft is edited or submitted while a
// submit for it is still in flight.
var ErrSubmitting = errors.New("draft is being submitted")

// Session holds one in-progress wizard.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu           sync.Mutex
	wizard       *portfolio.Wizard
	lastActiveAt time.Time
	submitting   bool
}

// Snapshot is a read-only view of a session at one point in time.
type Snapshot struct {
	ID        string                `json:"id"`
	Step      portfolio.Step        `json:"step"`
	StepIndex int                   `json:"step_index"`
	IsFirst   bool                  `json:"is_first"`
	IsLast    bool                  `json:"is_last"`
	Draft     portfolio.Draft       `json:"draft"`
	Missing   portfolio.FieldErrors `json:"missing"`
	CreatedAt time.Time             `json:"created_at"`
}

// Do runs fn with exclusive access to the wizard and returns a snapshot
// taken afterwards. A nil fn only reads. While a submit is in flight every
// non-nil fn is refused with ErrSubmitting.
func (s *Session) Do(now time.Time, fn func(w *portfolio.Wizard) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActiveAt = now
	if fn != nil {
		if s.submitting {
			return s.snapshot(), ErrSubmitting
		}
		if err := fn(s.wizard); err != nil {
			return s.snapshot(), err
		}
	}
	return s.snapshot(), nil
}

// BeginSubmit takes the pruned draft and freezes the session until
// EndSubmit is called. Only one caller at a time can hold the freeze.
func (s *Session) BeginSubmit(now time.Time) (portfolio.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActiveAt = now
	if s.submitting {
		return portfolio.Draft{}, ErrSubmitting
	}
	d, err := s.wizard.Submit()
	if err != nil {
		return portfolio.Draft{}, err
	}
	s.submitting = true
	return d, nil
}

// EndSubmit lifts the freeze set by BeginSubmit. It is called when the
// commit failed and the draft stays editable.
func (s *Session) EndSubmit() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
}

func (s *Session) snapshot() Snapshot {
	d := s.wizard.Draft()
	return Snapshot{
		ID:        s.ID,
		Step:      s.wizard.Step(),
		StepIndex: s.wizard.StepIndex(),
		IsFirst:   s.wizard.IsFirst(),
		IsLast:    s.wizard.IsLast(),
		Draft:     d,
		Missing:   portfolio.CheckStep(d, s.wizard.Step()),
		CreatedAt: s.CreatedAt,
	}
}

func (s *Session) expired(now time.Time, maxAge, idle time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	return now.Sub(s.CreatedAt) > maxAge || now.Sub(s.lastActiveAt) > idle
}

// Manager handles session creation, lookup, and cleanup.
type Manager struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	maxAge      time.Duration
	idleTimeout time.Duration
	now         func() time.Time
}

// NewManager creates a session manager with the given timeouts.
func NewManager(maxAge, idleTimeout time.Duration) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		maxAge:      maxAge,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Now returns the manager's clock reading.
func (m *Manager) Now() time.Time { return m.now() }

// Create starts a wizard for the given layout and returns its session.
func (m *Manager) Create(template types.Template) *Session {
	now := m.now()
	s := &Session{
		ID:           uuid.Must(uuid.NewV7()).String(),
		CreatedAt:    now,
		wizard:       portfolio.NewWizard(template),
		lastActiveAt: now,
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get retrieves a session by ID. Returns nil if not found or expired.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	if s.expired(m.now(), m.maxAge, m.idleTimeout) {
		m.Remove(id)
		return nil
	}
	return s
}

// Remove deletes a session and reports whether it was present. Exactly
// one of several concurrent callers sees true.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	return ok
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Cleanup removes all expired and idle sessions and returns how many
// were dropped.
func (m *Manager) Cleanup() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.expired(now, m.maxAge, m.idleTimeout) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Run calls Cleanup every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Cleanup(); n > 0 {
				zap.L().Debug("expired wizard sessions", zap.Int("count", n))
			}
		}
	}
}
