// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from
// command-line flags, environment variables, an optional JSON file and
// built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the client version and the coordinator signing key.
	App App `envPrefix:"APP_"`

	// Storage holds the key-value store DSN and the bookmarks file location.
	Storage Storage `envPrefix:"STORAGE_"`

	// Coordinator holds the address the background owner listens on and
	// foreground contexts connect to.
	Coordinator Coordinator `envPrefix:"COORDINATOR_"`

	// Adapter holds the remote bookmark service settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the update check scheduler and file watcher settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the daemon log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is the semantic version of the payload schema this client
	// writes. A remote payload written by a newer version is rejected.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// HashKey is the HMAC key used to sign coordinator messages
	// (the HashSHA256 header).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the key-value store connection settings.
	DB DB `envPrefix:"DB_"`

	// Bookmarks holds the native bookmarks file settings.
	Bookmarks Bookmarks `envPrefix:"BOOKMARKS_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite database file. ":memory:" keeps state in memory.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Bookmarks holds the native bookmark tree location.
type Bookmarks struct {
	// FilePath is the JSON file holding the local bookmark tree.
	// Env: STORAGE_BOOKMARKS_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// Coordinator holds the cross-process message channel settings.
type Coordinator struct {
	// Address is the "host:port" the daemon listens on.
	// Env: COORDINATOR_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds a single foreground request.
	// Env: COORDINATOR_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote bookmark service settings.
type Adapter struct {
	// HTTPAddress is the base URL of the remote bookmark service.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single remote request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the maximum number of remote requests per second.
	// Zero disables client-side throttling.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval is the period of the remote update check.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// InitialCheckDelay postpones the first update check after start.
	// Env: WORKERS_INITIAL_CHECK_DELAY
	InitialCheckDelay time.Duration `env:"INITIAL_CHECK_DELAY"`

	// WatchDebounce coalesces bursts of bookmarks file writes.
	// Env: WORKERS_WATCH_DEBOUNCE
	WatchDebounce time.Duration `env:"WATCH_DEBOUNCE"`
}

// Log holds the rotating log file settings.
type Log struct {
	// FilePath is the log file; empty writes to stdout.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// MaxSizeMB rotates the file once it grows past this size.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`

	// MaxBackups is the number of rotated files kept.
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
}

// defaultConfig holds the values used when no other source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "1.0.0",
		},
		Storage: Storage{
			DB:        DB{DSN: "bookmark-sync.db"},
			Bookmarks: Bookmarks{FilePath: "bookmarks.json"},
		},
		Coordinator: Coordinator{
			Address:        "127.0.0.1:8765",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			SyncInterval:      5 * time.Minute,
			InitialCheckDelay: 3 * time.Second,
			WatchDebounce:     500 * time.Millisecond,
		},
		Log: Log{
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}
