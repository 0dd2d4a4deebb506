// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/newslog-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SettingsRepository persists the plugin settings, the sync checkpoint and
// the run history in the local state database.
type SettingsRepository interface {
	// Load returns the stored settings. Keys that were never written are
	// returned as empty strings and DownloadedDates as an empty list.
	Load(ctx context.Context) (models.Settings, error)

	// SetValues upserts the given settings keys in one transaction.
	SetValues(ctx context.Context, values map[string]string) error

	// SetLastSyncDate stores the highlights checkpoint. An empty value resets
	// it.
	SetLastSyncDate(ctx context.Context, value string) error

	// AddDownloadedDate records date. Recording the same date twice keeps a
	// single entry.
	AddDownloadedDate(ctx context.Context, date string) error

	// ClearDownloadedDates forgets every recorded bundle date.
	ClearDownloadedDates(ctx context.Context) error

	// SaveSyncRun appends a finished run to the history.
	SaveSyncRun(ctx context.Context, run models.SyncRun) error

	// ListSyncRuns returns at most limit runs, newest first.
	ListSyncRuns(ctx context.Context, limit int) ([]models.SyncRun, error)
}

// NodeKind tells what, if anything, is stored at a vault path.
type NodeKind int

const (
	NodeAbsent NodeKind = iota
	NodeFile
	NodeFolder
)

func (k NodeKind) String() string {
	switch k {
	case NodeFile:
		return "file"
	case NodeFolder:
		return "folder"
	default:
		return "absent"
	}
}

// Vault is the note store the sync flows write into. Paths are relative to
// the vault root and use forward slashes.
type Vault interface {
	Stat(path string) (NodeKind, error)

	// CreateFolder creates path and its parents. An existing folder is not
	// an error.
	CreateFolder(path string) error

	CreateFile(path string, content []byte) error

	// Overwrite replaces the content of an existing file.
	Overwrite(path string, content []byte) error

	// Root returns the absolute location of the vault, for display.
	Root() string
}
