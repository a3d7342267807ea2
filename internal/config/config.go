// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

// Package config loads application configuration with koanf: struct
// defaults first, then an optional YAML file, then MEP_-prefixed
// environment variables, each layer overriding the previous. The merged
// result is validated before use.
//
// Environment variables map dots to underscores: MEP_SERVER_PORT overrides
// server.port.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces this application's environment variables.
const envPrefix = "MEP_"

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Storage StorageConfig `koanf:"storage"`
	Catalog CatalogConfig `koanf:"catalog"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig configures the HTTP surface serving the UI.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port" validate:"min=1,max=65535"`

	// CORSOrigins lists UI origins allowed to call the API.
	CORSOrigins []string `koanf:"corsorigins"`

	// RateLimit is the per-client request budget per minute.
	RateLimit int `koanf:"ratelimit" validate:"min=1"`
}

// StorageConfig configures the durable store.
type StorageConfig struct {
	Path       string `koanf:"path" validate:"required"`
	SyncWrites bool   `koanf:"syncwrites"`
}

// CatalogConfig configures the remote recipe catalog client.
type CatalogConfig struct {
	BaseURL string        `koanf:"baseurl" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`

	// RPS is the client-side rate limit toward the catalog.
	RPS   float64 `koanf:"rps" validate:"gt=0"`
	Burst int     `koanf:"burst" validate:"min=1"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Default returns the configuration used when no file or environment
// overrides exist.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "127.0.0.1",
			Port:        4280,
			CORSOrigins: []string{"http://localhost:5173"},
			RateLimit:   600,
		},
		Storage: StorageConfig{
			Path:       "data/collection",
			SyncWrites: false,
		},
		Catalog: CatalogConfig{
			BaseURL: "https://www.themealdb.com/api/json/v1/1",
			Timeout: 10 * time.Second,
			RPS:     4,
			Burst:   4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path (skipped when path is empty), and the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
