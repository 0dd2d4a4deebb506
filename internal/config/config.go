// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container populated by every
// source before merging.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the remote identity and the vault folders. Values set here
	// are written into the persisted settings on start.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote origin and outbound timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the state database and the vault location.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Command selects what the process does. Flags only.
	Command Command

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the Newslog identity and the folders downloads land in.
type App struct {
	// Username is the Newslog account name.
	// Env: APP_USERNAME
	Username string `env:"USERNAME"`

	// APIKey is the Newslog API key.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// HighlightsFolder is the vault-relative folder for highlights.
	// Env: APP_HIGHLIGHTS_FOLDER
	HighlightsFolder string `env:"HIGHLIGHTS_FOLDER"`

	// BundleFolder is the vault-relative folder for daily bundles.
	// Env: APP_BUNDLE_FOLDER
	BundleFolder string `env:"BUNDLE_FOLDER"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base origin of the Newslog API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the SQLite state database settings.
	DB DB `envPrefix:"DB_"`

	// Vault holds the note vault location.
	Vault Vault `envPrefix:"VAULT_"`
}

// DB holds the state database connection settings.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Vault holds the location of the note vault on disk.
type Vault struct {
	// Root is the vault directory; folder settings are relative to it.
	// Env: STORAGE_VAULT_ROOT
	Root string `env:"ROOT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path; empty selects the XDG state directory.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Command is the action requested on the command line.
type Command struct {
	// Action is one of the Action* constants.
	Action string

	// File is the clippings file for [ActionUpload].
	File string

	// Date is the YYYY-MM-DD bundle date for [ActionBundle].
	Date string

	// Interval is the sync period for [ActionWatch]; zero means the default.
	Interval time.Duration
}

// Supported values of [Command.Action].
const (
	ActionTUI             = "tui"
	ActionUpload          = "upload"
	ActionHighlights      = "highlights"
	ActionBundle          = "bundle"
	ActionSettings        = "settings"
	ActionResetHighlights = "reset-highlights"
	ActionResetBundles    = "reset-bundles"
	ActionHistory         = "history"
	ActionWatch           = "watch"
)

// GetStructuredConfig loads and merges the configuration from all sources in
// priority order (flags, env, JSON, defaults).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
