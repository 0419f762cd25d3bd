package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/archerhq/rangebook/internal/backend"
	domainauth "github.com/archerhq/rangebook/internal/domain/auth"
	"github.com/archerhq/rangebook/internal/ports"
)

// DefaultSessionTTL bounds how long a signed-in session stays valid. The
// remote backend issues no expiry of its own, so the client imposes one.
const DefaultSessionTTL = 12 * time.Hour

// LoginBackend is the slice of the backend client used for authentication.
type LoginBackend interface {
	Login(ctx context.Context, email, password string) (backend.LoginResult, backend.Result)
}

// RejectedError is a login refused by the backend (bad credentials, unknown
// user). Its message is user-facing and shown verbatim.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string { return e.Message }

var errSessionExpired = errors.New("session expired")

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Backend    LoginBackend
	Sessions   ports.SessionStore
	SessionTTL time.Duration
}

// AuthService signs users in against the remote backend and persists the
// resulting session behind the session-store port.
type AuthService struct {
	backend    LoginBackend
	sessions   ports.SessionStore
	sessionTTL time.Duration
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthService{
		backend:    opts.Backend,
		sessions:   opts.Sessions,
		sessionTTL: ttl,
	}
}

// Login authenticates the credentials against the backend's login action and,
// on success, persists a new session. A backend refusal comes back as a
// *RejectedError; anything else is an infrastructure failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (domainauth.Session, error) {
	if email == "" || password == "" {
		return domainauth.Session{}, &RejectedError{Message: "Email and password are required"}
	}

	identity, res := s.backend.Login(ctx, email, password)
	if !res.Success {
		return domainauth.Session{}, &RejectedError{Message: res.FailureText("Login failed")}
	}

	session := domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    identity.UserID,
		Name:      identity.Name,
		Email:     email,
		Role:      domainauth.ParseRole(identity.Role),
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if !session.IsValid() {
		// A success envelope without identity fields is a malformed response.
		return domainauth.Session{}, errors.New("backend returned incomplete identity")
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a session by ID, evicting it when expired.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}
