// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/NVIDIA/meal-catalog/pkg/defaults"
)

// DefaultPort is the listening port when PORT is not set.
const DefaultPort = 8000

// Config holds server configuration. Fields tagged with env are read from
// the environment by NewConfig.
type Config struct {
	// Server identity
	Name    string `env:"-"`
	Version string `env:"-"`

	// Handlers maps ServeMux patterns to handlers wrapped with the middleware chain.
	Handlers map[string]http.HandlerFunc `env:"-"`

	Address string `env:"ADDRESS"`
	Port    int    `env:"PORT"`

	// Token bucket rate limiting, requests per second and burst.
	RateLimit      float64 `env:"RATE_LIMIT"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST"`

	// CacheMaxAge is the Cache-Control max-age, in seconds, for catalog responses.
	CacheMaxAge int `env:"CACHE_MAX_AGE_SECONDS"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// NewConfig returns the default configuration overridden by environment
// variables. An unparsable environment falls back to the defaults.
func NewConfig() *Config {
	return parseConfig()
}

func defaultConfig() *Config {
	return &Config{
		Name:            "server",
		Version:         "undefined",
		Address:         "",
		Port:            DefaultPort,
		RateLimit:       100, // 100 req/s
		RateLimitBurst:  200, // burst of 200
		CacheMaxAge:     int(defaults.CatalogCacheTTL.Seconds()),
		ReadTimeout:     defaults.ServerReadTimeout,
		WriteTimeout:    defaults.ServerWriteTimeout,
		IdleTimeout:     defaults.ServerIdleTimeout,
		ShutdownTimeout: defaults.ServerShutdownTimeout,
	}
}

func parseConfig() *Config {
	cfg := defaultConfig()
	if err := env.Parse(cfg); err != nil {
		slog.Warn("invalid server environment, using defaults", "error", err)
		return defaultConfig()
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		slog.Warn("invalid port, using default", "port", cfg.Port, "default", DefaultPort)
		cfg.Port = DefaultPort
	}
	if cfg.RateLimitBurst < 1 {
		cfg.RateLimitBurst = 1
	}
	if cfg.CacheMaxAge < 0 {
		cfg.CacheMaxAge = 0
	}
	return cfg
}
