// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// Defaults applied when neither the environment nor any other source
// provides a value.
const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 5000
	DefaultEnvironment = "development"
	DefaultSecretKey   = "dev-key-change-in-production"
	DefaultDotEnvPath  = ".env"

	// ProductionEnvironment is the ENVIRONMENT value in which debug mode
	// is rejected by validation.
	ProductionEnvironment = "production"
)

// StructuredConfig is the top-level configuration container of the
// fluxrouter backend. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - env        — environment variable name (caarlos0/env).
//   - envDefault — value used when the variable is unset or empty.
type StructuredConfig struct {
	// App holds application-level settings echoed by the API or reserved
	// for future use.
	App App

	// Server holds the bind address and timeouts of the HTTP server.
	Server Server

	// FilePath is the optional path to a configuration file. The decoder is
	// chosen by extension: .toml, .yaml / .yml, anything else is JSON.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is the deployment environment name, echoed verbatim by
	// GET /api/status.
	// Env: ENVIRONMENT
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// Debug enables verbose logging. It is true only when DEBUG equals
	// "true" case-insensitively and must never be set in production.
	// Env: DEBUG
	Debug bool `env:"DEBUG"`

	// SecretKey is reserved for future session or signing use. No endpoint
	// reads it and it is never logged.
	// Env: SECRET_KEY
	SecretKey string `env:"SECRET_KEY" envDefault:"dev-key-change-in-production" json:"-"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// Host is the bind address.
	// Env: HOST
	Host string `env:"HOST" envDefault:"0.0.0.0"`

	// Port is the bind port.
	// Env: PORT
	Port int `env:"PORT" envDefault:"5000"`

	// ReadTimeout bounds reading an entire request, including the body.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`

	// WriteTimeout bounds writing the response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`

	// IdleTimeout bounds keep-alive connections waiting for the next request.
	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`

	// ShutdownTimeout bounds the graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Address returns the "host:port" listen address.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the configured environment is production.
func (a App) IsProduction() bool {
	return a.Environment == ProductionEnvironment
}

// UsesDefaultSecretKey reports whether SecretKey was left at its
// development default.
func (a App) UsesDefaultSecretKey() bool {
	return a.SecretKey == DefaultSecretKey
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables, after loading an optional .env file from the
//     working directory (variables already set in the process win)
//  2. Command-line flags
//  3. Configuration file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DefaultDotEnvPath).
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		build()
}
