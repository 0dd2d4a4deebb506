// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"slices"
	"time"
)

const (
	// DateLayout is the calendar date format used by the daily-bundle endpoint
	// and by the downloaded-dates list.
	DateLayout = "2006-01-02"

	// TimestampLayout is the ISO-8601 layout used for the last-sync checkpoint,
	// always rendered in UTC with millisecond precision.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Settings is the persisted client state: the remote identity, the vault
// folders downloads are placed into and the sync checkpoint.
type Settings struct {
	Username         string   `json:"username"`
	APIKey           string   `json:"api_key"`
	LastSyncDate     string   `json:"last_sync_date"`
	OutputFolderPath string   `json:"output_folder_path"`
	BundleFolderPath string   `json:"bundle_folder_path"`
	DownloadedDates  []string `json:"downloaded_dates"`
}

// Identity returns the credential pair stored in the settings.
func (s Settings) Identity() Identity {
	return Identity{Username: s.Username, APIKey: s.APIKey}
}

// Checkpoint returns the sync-tracking part of the settings.
func (s Settings) Checkpoint() Checkpoint {
	return Checkpoint{
		LastSyncDate:    s.LastSyncDate,
		DownloadedDates: slices.Clone(s.DownloadedDates),
	}
}

// Checkpoint tracks what has already been fetched from the server: the
// timestamp of the last highlights sync and the dates whose daily bundles
// were downloaded.
type Checkpoint struct {
	// LastSyncDate is empty when highlights were never synced.
	LastSyncDate string `json:"last_sync_date"`

	// DownloadedDates holds YYYY-MM-DD strings without duplicates.
	DownloadedDates []string `json:"downloaded_dates"`
}

// HasDownloaded reports whether the bundle for date was already downloaded.
func (c Checkpoint) HasDownloaded(date string) bool {
	return slices.Contains(c.DownloadedDates, date)
}

// NeverSynced reports whether highlights were never synced.
func (c Checkpoint) NeverSynced() bool {
	return c.LastSyncDate == ""
}

// FormatSyncTimestamp renders t as a checkpoint value.
func FormatSyncTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseBundleDate validates a YYYY-MM-DD date string and returns it
// normalised.
func ParseBundleDate(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("date %q must be in YYYY-MM-DD format: %w", date, err)
	}
	return t.Format(DateLayout), nil
}
