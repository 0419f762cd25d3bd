package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - backend.go: Booking backend endpoint configuration
//   - http.go: HTTP server configuration
//   - session.go: Session store configuration
type AppConfig struct {
	// IsDev controls development mode behavior (template reloading,
	// in-memory sessions, etc.). Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Backend endpoint configuration
	Backend BackendConfig

	// HTTP server configuration
	HTTP HTTPConfig

	// Session store configuration
	Session SessionConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Backend.Sanitize()
	c.Session.Sanitize()
}
