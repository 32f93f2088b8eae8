// Package memory holds the single-instance in-memory session table.
// Sessions do not survive a process restart; bank records are the
// durable state beneath them.
package memory

import (
	"fmt"
	"sync"

	"crossborder-orchestrator/internal/core/domain"
	"crossborder-orchestrator/pkg/apperror"
)

type entry struct {
	mu      sync.Mutex
	session *domain.PaymentSession
}

// SessionRepository implements ports.SessionRepository with a shared map
// and a per-session mutex. The processing guard delegates to the session
// itself but runs under the same lock, so concurrent verify calls for
// one (session, bank) pair observe it atomically.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

// NewSessionRepository creates an empty session table.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*entry)}
}

// Create stores a new session.
func (r *SessionRepository) Create(session *domain.PaymentSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[session.SessionID]; exists {
		return apperror.InternalError(fmt.Errorf("session %s already exists", session.SessionID))
	}
	r.sessions[session.SessionID] = &entry{session: session}
	return nil
}

// Get returns a snapshot copy of the session.
func (r *SessionRepository) Get(sessionID string) (*domain.PaymentSession, bool) {
	e, ok := r.lookup(sessionID)
	if !ok {
		return nil, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	snapshot := *e.session
	return &snapshot, true
}

// Update applies fn to the live session under its lock.
func (r *SessionRepository) Update(sessionID string, fn func(*domain.PaymentSession) error) error {
	e, ok := r.lookup(sessionID)
	if !ok {
		return apperror.ErrNotFound("Session")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// TryBeginProcessing atomically sets the per-bank re-entrancy guard.
func (r *SessionRepository) TryBeginProcessing(sessionID, bankID string) (bool, error) {
	e, ok := r.lookup(sessionID)
	if !ok {
		return false, apperror.ErrNotFound("Session")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.BeginProcessing(bankID), nil
}

// EndProcessing clears the guard. A missing session is a no-op: the
// guard only matters while the session exists.
func (r *SessionRepository) EndProcessing(sessionID, bankID string) {
	e, ok := r.lookup(sessionID)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.EndProcessing(bankID)
}

func (r *SessionRepository) lookup(sessionID string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[sessionID]
	return e, ok
}
