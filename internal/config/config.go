// Package config provides centralized configuration management for the
// converter and the viewer server. It loads configuration from environment
// variables with defaults and validates all settings on startup to fail fast
// on misconfiguration. Command-line flags override the loaded values.
package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Convert  ConvertConfig
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// ConvertConfig holds CSV conversion settings.
type ConvertConfig struct {
	// Profile is the field-extraction profile name (default: boog)
	Profile string `env:"STATGROUP_PROFILE" default:"boog"`

	// ProfilesFile is an optional YAML file with extra profiles
	ProfilesFile string `env:"STATGROUP_PROFILES_FILE"`

	// Output overrides the profile's default output path
	Output string `env:"STATGROUP_OUTPUT"`

	// Indent pretty-prints the JSON output (default: false)
	Indent bool `env:"STATGROUP_INDENT" default:"false"`
}

// ServerConfig holds viewer HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 127.0.0.1)
	Host string `env:"SERVER_HOST" default:"127.0.0.1"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`

	// CORSOrigins is a comma-separated list of origins allowed to fetch
	// the document from a browser (default: *)
	CORSOrigins string `env:"SERVER_CORS_ORIGINS" default:"*"`
}

// DatabaseConfig holds the optional Postgres export settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string; export is skipped when empty.
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// Table is the export table name (default: player_records)
	Table string `env:"DB_EXPORT_TABLE" default:"player_records"`

	// MaxConns is the maximum number of connections in the pool (default: 2)
	MaxConns int `env:"DB_MAX_CONNS" default:"2"`

	// Timeout bounds the whole export (default: 2m)
	Timeout time.Duration `env:"DB_EXPORT_TIMEOUT" default:"2m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// AllowedOrigins returns the CORS origins as a list.
// An empty setting allows every origin.
func (c *ServerConfig) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// ExportEnabled reports whether records should also be copied to Postgres.
func (c *DatabaseConfig) ExportEnabled() bool {
	return c.URL != ""
}
