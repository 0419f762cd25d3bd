// Package testutil provides shared helpers for tests that need external
// infrastructure. Redis-backed tests are skipped when no server is reachable
// so the unit suite stays runnable on a bare checkout.
package testutil

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/archerhq/rangebook/internal/domain/auth"
)

// TestingTB is the subset of testing.TB used by these helpers.
type TestingTB interface {
	Helper()
	Skip(args ...any)
	Skipf(format string, args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Logf(format string, args ...any)
	Cleanup(func())
}

// GetTestRedisAddr returns the Redis address for tests.
// Defaults to localhost:6379; override with TEST_REDIS_ADDR.
func GetTestRedisAddr() string {
	if addr := os.Getenv("TEST_REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// SetupTestRedis creates a Redis client for testing.
// Tests are skipped if Redis is not available.
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	addr := GetTestRedisAddr()
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   9, // keep test keys away from any local dev data
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			t.Logf("warning: failed to close redis client after ping error: %v", cerr)
		}
		t.Skipf("Redis not available for testing at %s: %v", addr, err)
	}

	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("warning: failed to close redis client: %v", err)
		}
	})
	return client
}

// UserSession builds a valid signed-in user session for tests.
func UserSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		UserID:    "user-" + id,
		Name:      "Robin Fletcher",
		Email:     "robin@example.com",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// AdminSession builds a valid admin session for tests.
func AdminSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		UserID:    "admin-" + id,
		Name:      "Sam Archer",
		Email:     "sam@example.com",
		Role:      domainauth.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}
