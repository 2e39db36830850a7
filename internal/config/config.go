// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for clio. It
// aggregates all sub-configurations and is populated by merging values from
// command-line flags, environment variables, an optional config file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with CLIO_ (see parseEnv).
type StructuredConfig struct {
	// App holds process-level settings such as logging and the HTTP user
	// agent.
	App App `envPrefix:"APP_"`

	// Directory holds the radio-browser directory connection settings.
	Directory Directory `envPrefix:"DIRECTORY_"`

	// Player holds decoder process and metadata polling settings.
	Player Player `envPrefix:"PLAYER_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. When non-empty, the file is parsed and merged below flags and
	// environment variables.
	// Populated via the CLIO_CONFIG environment variable or the -c / --config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds process-level configuration.
type App struct {
	// LogFile is the file log entries are appended to. The terminal is owned
	// by the TUI, so logs never go to stdout.
	// Env: CLIO_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: CLIO_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// UserAgent is sent with every directory request; radio-browser asks
	// clients to identify themselves.
	// Env: CLIO_APP_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Directory holds settings for the radio-browser directory API.
type Directory struct {
	// BaseURL is the directory endpoint used when discovery is disabled or
	// fails (e.g. "https://all.api.radio-browser.info").
	// Env: CLIO_DIRECTORY_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// SkipDiscovery disables picking a random mirror from /json/servers.
	// Env: CLIO_DIRECTORY_SKIP_DISCOVERY
	SkipDiscovery bool `env:"SKIP_DISCOVERY"`

	// RequestTimeout bounds every directory HTTP request (e.g. "10s").
	// Env: CLIO_DIRECTORY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SearchLimit caps the number of stations returned by a search.
	// Env: CLIO_DIRECTORY_SEARCH_LIMIT
	SearchLimit int `env:"SEARCH_LIMIT"`
}

// Player holds decoder subprocess and metadata polling settings.
type Player struct {
	// Binary is the mpv executable name or path.
	// Env: CLIO_PLAYER_BINARY
	Binary string `env:"BINARY"`

	// SocketDir is the directory the per-session IPC sockets are created in.
	// Env: CLIO_PLAYER_SOCKET_DIR
	SocketDir string `env:"SOCKET_DIR"`

	// PollInterval is the period of the recurring metadata poll.
	// Env: CLIO_PLAYER_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// FirstPollDelay is the delay of the one-shot early poll after launch.
	// Env: CLIO_PLAYER_FIRST_POLL_DELAY
	FirstPollDelay time.Duration `env:"FIRST_POLL_DELAY"`

	// IPCTimeout bounds a single IPC property request round trip.
	// Env: CLIO_PLAYER_IPC_TIMEOUT
	IPCTimeout time.Duration `env:"IPC_TIMEOUT"`

	// TerminateGrace is how long a stop waits for a terminated decoder to
	// exit before moving on.
	// Env: CLIO_PLAYER_TERMINATE_GRACE
	TerminateGrace time.Duration `env:"TERMINATE_GRACE"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the sqlite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite file path or DSN (e.g. "/home/me/.config/clio/clio.db").
	// Env: CLIO_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Sources are merged in the
// following priority order (earlier sources win for non-zero fields):
//  1. Command-line flags (args, without the program name)
//  2. Environment variables
//  3. Config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
}
