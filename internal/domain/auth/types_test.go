package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"user", RoleUser},
		{"", RoleUser},
		{"ADMIN", RoleUser}, // backend sends lowercase; anything else is a user
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRole(tt.in), "ParseRole(%q)", tt.in)
	}
}

func TestSessionIsValid(t *testing.T) {
	tests := []struct {
		name string
		sess Session
		want bool
	}{
		{"user and role present", Session{UserID: "u1", Role: RoleUser}, true},
		{"admin session", Session{UserID: "u2", Role: RoleAdmin}, true},
		{"missing user id", Session{Role: RoleUser}, false},
		{"missing role", Session{UserID: "u1"}, false},
		{"empty", Session{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sess.IsValid())
		})
	}
}

func TestSessionIsAdmin(t *testing.T) {
	assert.True(t, Session{UserID: "u1", Role: RoleAdmin}.IsAdmin())
	assert.False(t, Session{UserID: "u1", Role: RoleUser}.IsAdmin())
}
