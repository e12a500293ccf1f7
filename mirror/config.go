package mirror

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rigstream/witsgo/store"
)

// Config defines the config for the log mirror.
type Config struct {
	// UidWell, UidWellbore and UidLog identify the growing log to mirror.
	UidWell     string
	UidWellbore string
	UidLog      string

	// Table receives the curve rows; columns are derived from the log's
	// mnemonic list.
	Table string

	Interval   time.Duration
	BatchLimit int

	// FullRefetch re-pulls the whole data block every interval instead of
	// advancing startIndex past the last mirrored row. Needed for logs with
	// a date-time index.
	FullRefetch bool

	// SpoolPath enables the on-disk spool for rows that could not be
	// published; the spool survives restarts.
	SpoolPath string

	Registry prometheus.Registerer

	Logger store.Logger
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	Interval:   10 * time.Second,
	BatchLimit: 500,
}

// Helper function to set default values
func configDefault(config ...Config) Config {
	// Return default config if nothing provided
	if len(config) < 1 {
		return ConfigDefault
	}

	// Override default config
	cfg := config[0]

	if cfg.Interval < 100*time.Millisecond {
		cfg.Interval = ConfigDefault.Interval
	}

	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = ConfigDefault.BatchLimit
	}

	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	return cfg
}
