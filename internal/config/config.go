// Package config provides environment-driven configuration for the
// gridsearch server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Config holds all server configuration values.
type Config struct {
	Port        string
	ListenHost  string
	CORSOrigins []string
	LogLevel    string
	LogFormat   string
	GridRows    int
	GridCols    int
	MaxCells    int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       envOrDefault("PORT", "3040"),
		ListenHost: envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
		LogFormat:  envOrDefault("LOG_FORMAT", "json"),
	}

	var err error
	if cfg.GridRows, err = envInt("GRID_ROWS", gridgraph.DefaultRows); err != nil {
		return nil, err
	}
	if cfg.GridCols, err = envInt("GRID_COLS", gridgraph.DefaultCols); err != nil {
		return nil, err
	}
	if cfg.MaxCells, err = envInt("MAX_GRID_CELLS", 250_000); err != nil {
		return nil, err
	}

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:5173")
	cfg.CORSOrigins = strings.Split(origins, ",")
	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

// Grid returns the default grid requests fall back to when they omit bounds.
func (c *Config) Grid() gridgraph.Grid {
	return gridgraph.Grid{Rows: c.GridRows, Cols: c.GridCols}
}

// NewLogger builds a logrus logger from LogLevel and LogFormat.
// The level has already been validated by Load.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if c.LogFormat == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	return v, nil
}
