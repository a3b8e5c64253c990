package config

import (
	"time"

	"github.com/pgic/pgic-backend/pkg/retry"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	Import      ImportConfig      `yaml:"import"`
	Observation ObservationConfig `yaml:"observation"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Actor-Id,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"5m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"pgic"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout caps every statement server-side; 0 disables it.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ImportConfig bounds uploaded import files.
type ImportConfig struct {
	MaxFileSize      int64 `yaml:"max_file_size"      env:"IMPORT_MAX_FILE_SIZE"      env-default:"10485760"`
	MaxRows          int   `yaml:"max_rows"           env:"IMPORT_MAX_ROWS"           env-default:"100000"`
	UploadsPerMinute int   `yaml:"uploads_per_minute" env:"IMPORT_UPLOADS_PER_MINUTE" env-default:"30"`
}

// ObservationConfig controls retries of revision appends that lose a race
// for the next revision number.
type ObservationConfig struct {
	AppendMaxAttempts  int           `yaml:"append_max_attempts"   env:"OBSERVATION_APPEND_MAX_ATTEMPTS"   env-default:"5"`
	AppendInitialDelay time.Duration `yaml:"append_initial_delay"  env:"OBSERVATION_APPEND_INITIAL_DELAY"  env-default:"10ms"`
	AppendMaxDelay     time.Duration `yaml:"append_max_delay"      env:"OBSERVATION_APPEND_MAX_DELAY"      env-default:"200ms"`
}

// AppendRetry returns the retry policy for revision appends.
func (c ObservationConfig) AppendRetry() retry.Config {
	cfg := retry.DefaultConfig()
	cfg.MaxAttempts = c.AppendMaxAttempts
	cfg.InitialDelay = c.AppendInitialDelay
	cfg.MaxDelay = c.AppendMaxDelay
	return cfg
}
