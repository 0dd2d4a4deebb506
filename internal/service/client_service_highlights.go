// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/newslog-sync/internal/adapter"
	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/internal/store"
	"github.com/MKhiriev/newslog-sync/models"
)

const actionHighlights = "Highlights download failed"

type highlightsService struct {
	*flowBase
}

func NewHighlightsService(storages *store.ClientStorages, newslog adapter.NewslogAdapter, notifier Notifier, logger *logger.Logger, opts ...Option) HighlightsService {
	return &highlightsService{flowBase: newFlowBase(storages, newslog, notifier, logger, opts...)}
}

// SyncHighlights implements [HighlightsService].
//
// The checkpoint is the time the call started, not the time it finished, so
// highlights changed on the server while the loop runs are listed again next
// time. It is advanced whenever at least one key was listed, even if some or
// all items failed.
func (s *highlightsService) SyncHighlights(ctx context.Context) (models.SyncReport, error) {
	startedAt := s.now()
	report := models.SyncReport{Kind: models.SyncKindHighlights}

	if err := s.lock.Lock(ctx); err != nil {
		return report, err
	}
	defer s.lock.Unlock()

	settings, err := s.loadIdentity(ctx, actionHighlights)
	if err != nil {
		return report, err
	}
	report.Folder = settings.OutputFolderPath

	log := s.logger.With().Str("since", settings.LastSyncDate).Logger()
	s.notify(info("Starting download of newslog highlights..."))

	keys, err := s.adapter.ListChangedItemKeys(ctx, settings.Identity(), settings.LastSyncDate)
	if err != nil {
		log.Err(err).Msg("failed to list highlight keys")
		s.notify(failure(describeError("Failed to fetch the highlights list", err)))
		s.recordRun(ctx, report, models.SyncStatusFailed, startedAt)
		return report, fmt.Errorf("list highlights: %w", err)
	}

	if len(keys) == 0 {
		s.notify(info("No new highlights found on the server."))
		s.recordRun(ctx, report, models.SyncStatusEmpty, startedAt)
		return report, nil
	}

	s.notify(info(fmt.Sprintf("Found %d articles. Downloading...", len(keys))))

	if err = s.vault.CreateFolder(settings.OutputFolderPath); err != nil {
		log.Err(err).Str("path", settings.OutputFolderPath).Msg("failed to create highlights folder")
		s.notify(failure(describeError("Failed to create the highlights folder", err)))
		s.recordRun(ctx, report, models.SyncStatusFailed, startedAt)
		return report, fmt.Errorf("create highlights folder: %w", err)
	}

	for _, key := range keys {
		if err = s.syncOne(ctx, settings, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("highlight not saved")
			report.Failure()
			continue
		}
		report.Success()
	}

	checkpoint := models.FormatSyncTimestamp(startedAt)
	if err = s.settings.SetLastSyncDate(ctx, checkpoint); err != nil {
		log.Err(err).Msg("failed to save the highlights checkpoint")
		s.notify(failure(describeError("Failed to save the sync checkpoint", err)))
		s.recordRun(ctx, report, models.SyncStatusFailed, startedAt)
		return report, fmt.Errorf("save checkpoint: %w", err)
	}

	summary := fmt.Sprintf("Download complete! Successfully downloaded %d articles. Failed to download %d.", report.Succeeded, report.Failed)
	if report.Failed > 0 {
		s.notify(warning(summary))
	} else {
		s.notify(info(summary))
	}

	log.Info().Str("checkpoint", checkpoint).Int("succeeded", report.Succeeded).Int("failed", report.Failed).Msg("highlights synced")
	s.recordRun(ctx, report, models.SyncStatusCompleted, startedAt)
	return report, nil
}

func (s *highlightsService) syncOne(ctx context.Context, settings models.Settings, key string) error {
	url, err := s.adapter.RequestDownloadURL(ctx, settings.Identity(), key)
	if err != nil {
		return fmt.Errorf("request download url: %w", err)
	}

	content, err := s.adapter.GetContent(ctx, url)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}

	grouping, filename, err := parseKey(key)
	if err != nil {
		return err
	}

	folder := vaultPath(settings.OutputFolderPath, grouping)
	if err = s.vault.CreateFolder(folder); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}

	return writeNote(s.vault, vaultPath(folder, filename), []byte(content))
}
