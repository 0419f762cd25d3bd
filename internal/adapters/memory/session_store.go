package memory

// Package memory provides an in-process session store for development and
// tests. Sessions do not survive a restart; production deployments should
// configure Redis instead.

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/archerhq/rangebook/internal/domain/auth"
)

// ErrNotFound is returned when a session is not found.
var ErrNotFound = errors.New("session not found")

// SessionStore keeps sessions in a mutex-guarded map.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domainauth.Session)}
}

func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	if !time.Now().Before(sess.ExpiresAt) {
		return errors.New("session is expired")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}

	// Expiry is enforced lazily on read; there is no background sweeper.
	if time.Now().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return domainauth.Session{}, ErrNotFound
	}

	return sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
