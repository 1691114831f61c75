// Package config loads runtime settings for the TaskKeeper CLI.
package config

// Config holds runtime settings for the TaskKeeper CLI.
//
// Fields:
//   - DatabaseDSN: path (or sqlite DSN) of the local store file.
//   - Verbose: enables debug-level logging.
type Config struct {
	DatabaseDSN string
	Verbose     bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "taskkeeper.db"
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
