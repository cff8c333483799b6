package httpserver

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration with environment variable support.
type Config struct {
	// Addr is the TCP address the server listens on.
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Timeouts applied to the underlying http.Server.
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// MaxHeaderBytes caps the size of request headers.
	MaxHeaderBytes int `env:"SERVER_MAX_HEADER_BYTES" envDefault:"1048576"` // 1MB

	// MaxBodyBytes caps the size of request bodies. Oversized requests
	// are rejected with 413 Content Too Large. Zero means unlimited.
	MaxBodyBytes int64 `env:"SERVER_MAX_BODY_BYTES" envDefault:"10485760"` // 10MB

	// MaxConns caps the number of simultaneously accepted connections.
	// Zero means unlimited.
	MaxConns int `env:"SERVER_MAX_CONNS" envDefault:"0"`
}

// DefaultConfig returns a Config with the documented defaults, without
// consulting the environment.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		MaxHeaderBytes:  1 << 20,
		MaxBodyBytes:    10 << 20,
	}
}

// LoadConfig populates a Config from environment variables, falling back
// to the documented defaults for unset variables.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to load server config: %w", err)
	}
	return cfg, nil
}
