package store

import (
	"net/http"
	"time"
)

// Config defines the config for the store client.
type Config struct {
	// URL gives the location of the store's Store API endpoint.
	URL string

	// Username and Password authenticate against the store.
	Username string
	Password string

	// AgentName is the User-Agent sent with every call.
	AgentName string

	Timeout time.Duration

	// Insecure disables TLS certificate verification; RootCAs points to a
	// pem bundle used instead of the system roots.
	Insecure bool
	RootCAs  string

	// HTTPClient overrides the built transport when set.
	HTTPClient *http.Client

	Logger Logger
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	AgentName: "witsgo",
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

	if cfg.AgentName == "" {
		cfg.AgentName = ConfigDefault.AgentName
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = ConfigDefault.Timeout
	}

	return cfg
}
