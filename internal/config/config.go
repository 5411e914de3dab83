// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "FOODIE_"

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and the defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token settings used by the development backend.
	App App `envPrefix:"APP_"`

	// Adapter holds the address of the food-ordering backend the client
	// talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listen address of the development backend.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the local session database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the log file destination and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via FOODIE_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file read before the environment is parsed.
	// Populated via FOODIE_DOTENV only.
	DotEnvPath string `env:"DOTENV"`
}

// App holds token issuing settings of the development backend.
type App struct {
	// Env: FOODIE_APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
	// Env: FOODIE_APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
	// Env: FOODIE_APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Adapter holds outbound transport settings.
type Adapter struct {
	// HTTPAddress is the backend address, "host:port" or a full URL.
	// Env: FOODIE_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single backend request.
	// Env: FOODIE_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds inbound transport settings of the development backend.
type Server struct {
	// Env: FOODIE_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: FOODIE_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite session database location.
type DB struct {
	// Env: FOODIE_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds background job settings.
type Workers struct {
	// SessionCheckInterval is how often the stored session token is checked
	// for expiry.
	// Env: FOODIE_WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// Log holds logger settings. The terminal UI owns stdout, so logs go to a
// file.
type Log struct {
	// Env: FOODIE_LOG_PATH
	Path string `env:"PATH"`
	// Env: FOODIE_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
