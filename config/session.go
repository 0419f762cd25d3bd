package config

import "time"

// SessionConfig contains session store configuration.
type SessionConfig struct {
	// Redis connection settings for the session store. When RedisAddr is
	// empty the app falls back to the in-memory store, which is only
	// suitable for development.
	RedisAddr     string `env:"SESSION_REDIS_ADDR"     envDefault:""`
	RedisPassword string `env:"SESSION_REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"SESSION_REDIS_DB"       envDefault:"0"`

	// TTL is how long a signed-in session lasts.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL <= 0 {
		s.TTL = 12 * time.Hour
	}
}
