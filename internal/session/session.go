// Package session holds the authenticated user's credentials for the editing
// session. The store is an explicit object handed to the network client at
// construction; nothing reads ambient global state. Invalidate and Refresh
// are first-class operations so session expiry handling stays in one place.
package session

import (
	"errors"
	"time"
)

// ErrNoSession is returned when no credential is stored.
var ErrNoSession = errors.New("no active session")

// User identifies the authenticated account.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session couples a bearer token with the user it authenticates.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is the session persistence interface. Implementations are a memory
// store for tests and a file store for the CLI.
type Store interface {
	// Current returns the active session or ErrNoSession.
	Current() (Session, error)

	// Refresh replaces the active session with a newly issued one.
	Refresh(s Session) error

	// Invalidate purges the stored credential. Invalidate on an empty
	// store is a no-op.
	Invalidate() error
}

// MemoryStore keeps the session in process memory.
type MemoryStore struct {
	session *Session
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Current implements Store.
func (m *MemoryStore) Current() (Session, error) {
	if m.session == nil {
		return Session{}, ErrNoSession
	}
	return *m.session, nil
}

// Refresh implements Store.
func (m *MemoryStore) Refresh(s Session) error {
	copy := s
	m.session = &copy
	return nil
}

// Invalidate implements Store.
func (m *MemoryStore) Invalidate() error {
	m.session = nil
	return nil
}
