package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/archerhq/rangebook/config"
	memorystore "github.com/archerhq/rangebook/internal/adapters/memory"
	redisstore "github.com/archerhq/rangebook/internal/adapters/redis"
	"github.com/archerhq/rangebook/internal/backend"
	"github.com/archerhq/rangebook/internal/ports"
	"github.com/archerhq/rangebook/internal/service"
)

// ConnectRedis connects the Redis client used by the session store and
// verifies the connection with a ping. Returns nil when no Redis address is
// configured; the caller falls back to the in-memory store.
func ConnectRedis(ctx context.Context, cfg config.SessionConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Info("connected to redis", "addr", cfg.RedisAddr)
	return client, nil
}

// ServiceDeps groups the dependencies needed to build the service container.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// ServiceContainer holds the wired application services.
type ServiceContainer struct {
	Auth     *service.AuthService
	Bookings *service.BookingService
}

// NewServices wires the backend client, session store, and application
// services from configuration.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client, err := backend.NewClient(backend.Config{
		EndpointURL: deps.Config.Backend.EndpointURL,
		Timeout:     deps.Config.Backend.Timeout,
		Logger:      logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("backend client: %w", err)
	}

	var sessions ports.SessionStore
	if deps.RedisClient != nil {
		sessions = redisstore.NewSessionStore(deps.RedisClient)
	} else {
		logger.Warn("no session redis configured, using in-memory session store")
		sessions = memorystore.NewSessionStore()
	}

	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Backend:    client,
			Sessions:   sessions,
			SessionTTL: deps.Config.Session.TTL,
		}),
		Bookings: service.NewBookingService(service.BookingServiceOptions{
			Backend: client,
		}),
	}, nil
}
