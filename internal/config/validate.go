package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Lexicon.validate(); err != nil {
		return fmt.Errorf("lexicon: %w", err)
	}

	if c.Lexicon.Driver == DriverPostgres && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required when lexicon.driver is %q", DriverPostgres)
	}

	if err := c.Engine.validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (l *LexiconConfig) validate() error {
	l.Driver = strings.ToLower(strings.TrimSpace(l.Driver))

	switch l.Driver {
	case DriverSQLite, DriverTSV:
		if l.Path == "" {
			return fmt.Errorf("path is required for driver %q", l.Driver)
		}
	case DriverPostgres, DriverNone:
	default:
		return fmt.Errorf("unknown driver %q (want sqlite, postgres, tsv or none)", l.Driver)
	}

	if l.LoadTimeout <= 0 {
		return fmt.Errorf("load_timeout must be > 0 (got %v)", l.LoadTimeout)
	}
	return nil
}

func (e *EngineConfig) validate() error {
	if e.MaxInputRunes <= 0 {
		return fmt.Errorf("max_input_runes must be > 0 (got %d)", e.MaxInputRunes)
	}
	if e.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be >= 0 (got %v)", e.CacheTTL)
	}
	if e.CacheTTL > 0 && e.CacheCleanup <= 0 {
		return fmt.Errorf("cache_cleanup must be > 0 when cache is enabled (got %v)", e.CacheCleanup)
	}
	return nil
}
