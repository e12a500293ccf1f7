package soap

import (
	"net/http"
	"time"
)

// Config defines the config for the soap transport.
type Config struct {
	// URL gives the location of the service endpoint.
	URL string

	// Username and Password go into the http basic auth header.
	Username string
	Password string

	// UserAgent is sent with every request.
	UserAgent string

	Timeout time.Duration

	// Insecure disables TLS certificate verification.
	Insecure bool

	// RootCAs is a path to a pem bundle used instead of the system roots.
	RootCAs string

	// HTTPClient overrides the built transport when set; the TLS fields
	// above are then ignored.
	HTTPClient *http.Client
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	UserAgent: "witsgo",
	Timeout:   30 * time.Second,
}

// Helper function to set default values
func configDefault(config ...Config) Config {
	// Return default config if nothing provided
	if len(config) < 1 {
		return ConfigDefault
	}

	// Override default config
	cfg := config[0]

	if cfg.UserAgent == "" {
		cfg.UserAgent = ConfigDefault.UserAgent
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = ConfigDefault.Timeout
	}

	return cfg
}
