// Package config loads runtime settings from PAYROLL_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

type Config struct {
	Server struct {
		Port            int      `env:"PORT" envDefault:"8080"`
		ReadTimeout     int      `env:"READ_TIMEOUT" envDefault:"15"`
		WriteTimeout    int      `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int      `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int      `env:"SHUTDOWN_TIMEOUT" envDefault:"30"`
		AllowedOrigins  []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:8080"`
	} `envPrefix:"SERVER_"`
	Log struct {
		Level  string `env:"LEVEL" envDefault:"info"`
		Pretty bool   `env:"PRETTY" envDefault:"false"`
	} `envPrefix:"LOG_"`
	Payroll struct {
		// Scenario is loaded at startup unless RosterPath is set.
		Scenario   string `env:"SCENARIO" envDefault:"reference"`
		RosterPath string `env:"ROSTER_PATH"`
	}
}

// Load parses the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "PAYROLL_"}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	return cfg, nil
}

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }

func (c *Config) ReadTimeout() time.Duration     { return seconds(c.Server.ReadTimeout) }
func (c *Config) WriteTimeout() time.Duration    { return seconds(c.Server.WriteTimeout) }
func (c *Config) IdleTimeout() time.Duration     { return seconds(c.Server.IdleTimeout) }
func (c *Config) ShutdownTimeout() time.Duration { return seconds(c.Server.ShutdownTimeout) }

// Logger builds the root logger from the Log section.
func (c *Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	logger := zerolog.New(os.Stderr)
	if c.Log.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return logger.Level(level).With().Timestamp().Logger()
}
