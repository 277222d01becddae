// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

// Package config loads Promodex configuration with Koanf v2 from layered
// sources, highest priority last:
//
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml, /etc/promodex/config.yaml,
//     or the path in CONFIG_PATH)
//  3. Environment variables (HTTP_PORT, CATALOG_PATH, LOG_LEVEL, ...)
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for the Promodex server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Data     DataConfig     `koanf:"data"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Default 0.0.0.0.
	Host string `koanf:"host"`

	// Port is the listen port. The default 5001 matches the service this
	// engine replaced, so existing storefront configs keep working.
	Port int `koanf:"port"`

	// Timeout applies to both reads and writes.
	Timeout time.Duration `koanf:"timeout"`

	// Environment is "development" or "production".
	Environment string `koanf:"environment"`
}

// DataConfig points at the two CSV sources loaded at startup. Both are
// required; the process refuses to start without them.
type DataConfig struct {
	// CatalogPath is the product catalog CSV
	// (product_id, product_name, price, cost, category, ...).
	CatalogPath string `koanf:"catalog_path"`

	// EventsPath is the behavioral event CSV
	// (event_time, event_type, product_id, ...).
	EventsPath string `koanf:"events_path"`
}

// SecurityConfig holds CORS and rate limiting settings. Promodex has no
// authentication layer; it is meant to sit behind a storefront backend or an
// ingress that handles identity.
type SecurityConfig struct {
	// CORSOrigins lists allowed origins. The default "*" mirrors the
	// upstream service; restrict it in production.
	CORSOrigins []string `koanf:"cors_origins"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// Validate checks the configuration for values that would make the server
// misbehave at runtime. Called by Load; separate for tests.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Data.CatalogPath == "" {
		return fmt.Errorf("data.catalog_path is required")
	}
	if c.Data.EventsPath == "" {
		return fmt.Errorf("data.events_path is required")
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}

	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("server.environment %q must be development or production", c.Server.Environment)
	}

	return nil
}

// ShouldWarnAboutCORS reports whether the wildcard-origin warning applies.
func (c *Config) ShouldWarnAboutCORS() bool {
	if c.IsDevelopment() {
		return false
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
