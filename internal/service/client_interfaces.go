// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/newslog-sync/models"
)

// UploadService sends a Kindle clippings export to the Newslog server.
type UploadService interface {
	// UploadClippings reads the file at localPath and uploads it through a
	// presigned URL. The server processes it asynchronously.
	UploadClippings(ctx context.Context, localPath string) (models.SyncReport, error)
}

// HighlightsService pulls highlights changed since the last checkpoint into
// the vault.
type HighlightsService interface {
	// SyncHighlights downloads every changed highlight, one at a time. A
	// failed item is counted and skipped; the returned error is set only when
	// the flow could not run at all or the checkpoint could not be saved.
	SyncHighlights(ctx context.Context) (models.SyncReport, error)
}

// BundleService pulls the daily bundles of one calendar date into the vault.
type BundleService interface {
	// DownloadDailyBundle downloads every file of every bundle for date
	// (YYYY-MM-DD) and records the date as downloaded.
	DownloadDailyBundle(ctx context.Context, date string) (models.SyncReport, error)
}

// SettingsService reads and edits the persisted settings and the sync
// history.
type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	SetIdentity(ctx context.Context, identity models.Identity) error
	SetOutputFolder(ctx context.Context, folder string) error
	SetBundleFolder(ctx context.Context, folder string) error

	// ResetHighlightHistory clears the highlights checkpoint so the next sync
	// requests the full set.
	ResetHighlightHistory(ctx context.Context) error

	// ResetBundleHistory forgets every downloaded bundle date.
	ResetBundleHistory(ctx context.Context) error

	// ApplyOverrides saves the non-empty identity and folder values of
	// overrides.
	ApplyOverrides(ctx context.Context, overrides models.Settings) error

	// History returns at most limit recent sync runs, newest first.
	History(ctx context.Context, limit int) ([]models.SyncRun, error)
}

// SyncJob runs the highlights flow periodically in the background.
type SyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to 15 minutes if interval is zero or negative. Any
	// previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
