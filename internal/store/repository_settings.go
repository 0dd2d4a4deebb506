// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/models"
)

const defaultHistoryLimit = 20

type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *settingsRepository) Load(ctx context.Context) (models.Settings, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := buildSelectSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.Load").Msg("failed to query settings")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var settings models.Settings
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			log.Err(err).Str("func", "settingsRepository.Load").Msg("failed to scan settings row")
			return models.Settings{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		switch key {
		case KeyUsername:
			settings.Username = value
		case KeyAPIKey:
			settings.APIKey = value
		case KeyLastSyncDate:
			settings.LastSyncDate = value
		case KeyOutputFolderPath:
			settings.OutputFolderPath = value
		case KeyBundleFolderPath:
			settings.BundleFolderPath = value
		}
	}
	if err = rows.Err(); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	settings.DownloadedDates, err = r.downloadedDates(ctx)
	if err != nil {
		return models.Settings{}, err
	}

	return settings, nil
}

func (r *settingsRepository) downloadedDates(ctx context.Context) ([]string, error) {
	query, args, err := buildSelectDownloadedDates()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).Str("func", "settingsRepository.downloadedDates").Msg("failed to query downloaded dates")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var date string
		if err = rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		dates = append(dates, date)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return dates, nil
}

func (r *settingsRepository) SetValues(ctx context.Context, values map[string]string) error {
	log := logger.FromContextOr(ctx, r.logger)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.SetValues").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// sorted for a deterministic statement order
	for _, key := range slices.Sorted(maps.Keys(values)) {
		query, args, buildErr := buildUpsertSetting(key, values[key])
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "settingsRepository.SetValues").Str("key", key).Msg("failed to upsert setting")
			return fmt.Errorf("%w: save %s: %w", ErrExecutingQuery, key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *settingsRepository) SetLastSyncDate(ctx context.Context, value string) error {
	return r.exec(ctx, "SetLastSyncDate", func() (string, []any, error) {
		return buildUpsertSetting(KeyLastSyncDate, value)
	})
}

func (r *settingsRepository) AddDownloadedDate(ctx context.Context, date string) error {
	return r.exec(ctx, "AddDownloadedDate", func() (string, []any, error) {
		return buildInsertDownloadedDate(date)
	})
}

func (r *settingsRepository) ClearDownloadedDates(ctx context.Context) error {
	return r.exec(ctx, "ClearDownloadedDates", buildDeleteDownloadedDates)
}

func (r *settingsRepository) SaveSyncRun(ctx context.Context, run models.SyncRun) error {
	return r.exec(ctx, "SaveSyncRun", func() (string, []any, error) {
		return buildInsertSyncRun(run)
	})
}

func (r *settingsRepository) ListSyncRuns(ctx context.Context, limit int) ([]models.SyncRun, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	query, args, err := buildSelectSyncRuns(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).Str("func", "settingsRepository.ListSyncRuns").Msg("failed to query sync runs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	runs := make([]models.SyncRun, 0, limit)
	for rows.Next() {
		var (
			run                   models.SyncRun
			kind, status          string
			startedAt, finishedAt string
		)
		if err = rows.Scan(&run.ID, &kind, &run.Target, &status, &run.Succeeded, &run.Failed, &startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		run.Kind = models.SyncKind(kind)
		run.Status = models.SyncStatus(status)
		run.StartedAt = parseStoredTime(startedAt)
		run.FinishedAt = parseStoredTime(finishedAt)
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return runs, nil
}

func (r *settingsRepository) exec(ctx context.Context, op string, build func() (string, []any, error)) error {
	query, args, err := build()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).Str("func", "settingsRepository."+op).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func parseStoredTime(s string) time.Time {
	t, err := time.Parse(models.TimestampLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
