// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/adrg/xdg"
)

const (
	// DefaultServerURL is the production Newslog API origin.
	DefaultServerURL = "https://ifkf2fi17a.execute-api.us-east-2.amazonaws.com"

	// DefaultRequestTimeout bounds a single outbound request.
	DefaultRequestTimeout = 30 * time.Second

	appDirName = "newslog-sync"
)

func defaultConfig() (*StructuredConfig, error) {
	dsn, err := xdg.DataFile(appDirName + "/state.db")
	if err != nil {
		return nil, fmt.Errorf("error resolving default state database path: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultServerURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB:    DB{DSN: dsn},
			Vault: Vault{Root: "."},
		},
		Log: Log{
			Level: "info",
		},
		Command: Command{
			Action: ActionTUI,
		},
	}, nil
}
