// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/newslog-sync/internal/config"
	"github.com/MKhiriev/newslog-sync/internal/logger"
)

// ClientStorages groups the local storage the service layer works with: the
// SQLite-backed settings and the vault the notes are written into.
type ClientStorages struct {
	SettingsRepository SettingsRepository
	Vault              Vault

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the parent
//     directory when needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Opens the vault rooted at cfg.VaultRoot.
//
// Returns an error if any of the steps fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	vault, err := NewFileVault(cfg.VaultRoot, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("vault error: %w", err)
	}

	return &ClientStorages{
		SettingsRepository: NewSettingsRepository(db, logger),
		Vault:              vault,
		db:                 db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
