// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ServerURL holds a validated absolute http(s) origin.
// It implements the flag.Value interface.
type ServerURL struct {
	URL string
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a/-server Newslog API origin (e.g. https://api.example.com)
//	-request-timeout outbound request timeout (e.g. "30s")
//	-d state database DSN (SQLite file path)
//	-vault vault root directory
//	-username Newslog username
//	-api-key Newslog API key
//	-highlights-folder vault folder for highlights
//	-bundle-folder vault folder for daily bundles
//	-log-level log level
//	-log-file log file path
//	-c/-config json file path with configs
//	-action action to run (tui, upload, highlights, bundle, settings,
//	        reset-highlights, reset-bundles, history, watch)
//	-file clippings file to upload
//	-date bundle date in YYYY-MM-DD format
//	-interval highlights sync period for watch (e.g. "15m")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("newslog", flag.ContinueOnError)

	var server ServerURL
	var requestTimeout, interval time.Duration
	var dsn, vaultRoot string
	var username, apiKey string
	var highlightsFolder, bundleFolder string
	var logLevel, logFile string
	var jsonConfigPath string
	var action, file, date string

	fs.Var(&server, "a", "Newslog API origin")
	fs.Var(&server, "server", "Newslog API origin (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&dsn, "d", "", "State database DSN")
	fs.StringVar(&vaultRoot, "vault", "", "Vault root directory")
	fs.StringVar(&username, "username", "", "Newslog username")
	fs.StringVar(&apiKey, "api-key", "", "Newslog API key")
	fs.StringVar(&highlightsFolder, "highlights-folder", "", "Vault folder for highlights")
	fs.StringVar(&bundleFolder, "bundle-folder", "", "Vault folder for daily bundles")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&action, "action", "", "Action to run")
	fs.StringVar(&file, "file", "", "Clippings file to upload")
	fs.StringVar(&date, "date", "", "Bundle date (YYYY-MM-DD)")
	fs.DurationVar(&interval, "interval", 0, "Highlights sync period for watch (e.g., 15m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Username:         username,
			APIKey:           apiKey,
			HighlightsFolder: highlightsFolder,
			BundleFolder:     bundleFolder,
		},
		Adapter: Adapter{
			HTTPAddress:    server.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:    DB{DSN: dsn},
			Vault: Vault{Root: vaultRoot},
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		Command: Command{
			Action:   action,
			File:     file,
			Date:     date,
			Interval: interval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the origin without a trailing slash.
func (s *ServerURL) String() string {
	return s.URL
}

// Set validates that v is an absolute http or https URL with a host.
func (s *ServerURL) Set(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return errors.New("server address is empty")
	}

	u, err := url.Parse(v)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("server address must use http or https scheme")
	}
	if u.Host == "" {
		return errors.New("server address must include a host")
	}

	s.URL = strings.TrimRight(u.String(), "/")
	return nil
}
