// Package ports defines interfaces (hexagonal ports) for session persistence.
// Implementations live in internal/adapters; orchestration in internal/service.
package ports

import (
	"context"

	domainauth "github.com/archerhq/rangebook/internal/domain/auth"
)

// SessionStore persists and retrieves user sessions. The browser only holds
// the session ID; the record itself lives behind this port so the backing
// store (Redis, memory) can be swapped freely.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
