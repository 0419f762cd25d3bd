package config

import "time"

// BackendConfig contains the booking backend endpoint configuration. The
// backend is a single remote JSON dispatch endpoint; every operation posts
// an action envelope to the same URL.
type BackendConfig struct {
	// EndpointURL is the booking backend's dispatch URL. Required.
	EndpointURL string `env:"BACKEND_ENDPOINT_URL"`

	// Timeout bounds each backend call.
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	if b.Timeout <= 0 {
		b.Timeout = 30 * time.Second
	}
}
