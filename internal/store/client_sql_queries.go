// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/newslog-sync/models"
)

const (
	tableSettings        = "settings"
	tableDownloadedDates = "downloaded_dates"
	tableSyncRuns        = "sync_runs"
)

// Keys of the settings table.
const (
	KeyUsername         = "username"
	KeyAPIKey           = "apiKey"
	KeyLastSyncDate     = "lastSyncDate"
	KeyOutputFolderPath = "outputFolderPath"
	KeyBundleFolderPath = "bundleFolderPath"
)

var syncRunColumns = []string{
	"id", "kind", "target", "status", "succeeded", "failed", "started_at", "finished_at",
}

// sqlite takes "?" placeholders, which is squirrel's default.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectSettings() (string, []any, error) {
	return qb.Select("key", "value").From(tableSettings).ToSql()
}

func buildUpsertSetting(key, value string) (string, []any, error) {
	return qb.Insert(tableSettings).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildSelectDownloadedDates() (string, []any, error) {
	return qb.Select("date").From(tableDownloadedDates).OrderBy("added_at", "date").ToSql()
}

func buildInsertDownloadedDate(date string) (string, []any, error) {
	return qb.Insert(tableDownloadedDates).
		Options("OR IGNORE").
		Columns("date").
		Values(date).
		ToSql()
}

func buildDeleteDownloadedDates() (string, []any, error) {
	return qb.Delete(tableDownloadedDates).ToSql()
}

func buildInsertSyncRun(run models.SyncRun) (string, []any, error) {
	return qb.Insert(tableSyncRuns).
		Columns(slices.Clone(syncRunColumns)...).
		Values(
			run.ID,
			string(run.Kind),
			run.Target,
			string(run.Status),
			run.Succeeded,
			run.Failed,
			models.FormatSyncTimestamp(run.StartedAt),
			models.FormatSyncTimestamp(run.FinishedAt),
		).
		ToSql()
}

func buildSelectSyncRuns(limit int) (string, []any, error) {
	return qb.Select(syncRunColumns...).
		From(tableSyncRuns).
		OrderBy("started_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}
