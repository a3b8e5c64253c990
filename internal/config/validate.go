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

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed database.max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must not be negative (got %v)", c.Database.StatementTimeout)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := c.Observation.validate(); err != nil {
		return fmt.Errorf("observation: %w", err)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (i *ImportConfig) validate() error {
	if i.MaxFileSize <= 0 {
		return fmt.Errorf("max_file_size must be > 0 (got %d)", i.MaxFileSize)
	}
	if i.MaxRows <= 0 {
		return fmt.Errorf("max_rows must be > 0 (got %d)", i.MaxRows)
	}
	if i.UploadsPerMinute <= 0 {
		return fmt.Errorf("uploads_per_minute must be > 0 (got %d)", i.UploadsPerMinute)
	}
	return nil
}

func (o *ObservationConfig) validate() error {
	if o.AppendMaxAttempts < 1 || o.AppendMaxAttempts > 20 {
		return fmt.Errorf("append_max_attempts must be in 1..20 (got %d)", o.AppendMaxAttempts)
	}
	if o.AppendInitialDelay < 0 || o.AppendMaxDelay < 0 {
		return fmt.Errorf("append delays must not be negative")
	}
	if o.AppendMaxDelay < o.AppendInitialDelay {
		return fmt.Errorf("append_max_delay (%v) must be >= append_initial_delay (%v)", o.AppendMaxDelay, o.AppendInitialDelay)
	}
	return nil
}
