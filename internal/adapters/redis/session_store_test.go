package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/archerhq/rangebook/internal/domain/auth"
	"github.com/archerhq/rangebook/internal/testutil"
)

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	ctx := context.Background()

	session := domainauth.Session{
		ID:        "test-session-1",
		UserID:    "user-123",
		Name:      "Robin Fletcher",
		Email:     "robin@example.com",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	err := store.Save(ctx, session)
	require.NoError(t, err)
	defer func() {
		_ = store.Delete(ctx, session.ID)
	}()

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.UserID, retrieved.UserID)
	assert.Equal(t, session.Name, retrieved.Name)
	assert.Equal(t, session.Email, retrieved.Email)
	assert.Equal(t, session.Role, retrieved.Role)
	assert.WithinDuration(t, session.ExpiresAt, retrieved.ExpiresAt, time.Second)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "non-existent")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_RejectsExpiredOnSave(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)

	err := store.Save(context.Background(), domainauth.Session{
		ID:        "expired-session",
		UserID:    "user-123",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	assert.Error(t, err)
}

func TestSessionStore_Delete(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStore(client)
	ctx := context.Background()

	session := testutil.UserSession("delete-me")
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, session.ID))

	_, err := store.Get(ctx, session.ID)
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_KeyPrefix(t *testing.T) {
	client := testutil.SetupTestRedis(t)

	store := NewSessionStoreWithPrefix(client, "archerySession:test:")
	ctx := context.Background()

	session := testutil.UserSession("prefixed")
	require.NoError(t, store.Save(ctx, session))
	defer func() {
		_ = store.Delete(ctx, session.ID)
	}()

	exists, err := client.Exists(ctx, "archerySession:test:"+session.ID).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}
