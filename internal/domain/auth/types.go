package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole maps the role string returned by the booking backend onto a Role.
// Anything that is not "admin" is treated as a regular user, mirroring the
// backend's two-role model.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// Session is the server-side record we persist for a signed-in user.
// ID is an opaque session identifier (random URL-safe string); the browser
// only ever carries the ID in a cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsValid reports whether the session identifies a signed-in user.
// A session is valid only when both the user ID and the role are present.
func (s Session) IsValid() bool {
	return s.UserID != "" && s.Role != ""
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
