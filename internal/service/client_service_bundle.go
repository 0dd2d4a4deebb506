// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/newslog-sync/internal/adapter"
	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/internal/store"
	"github.com/MKhiriev/newslog-sync/models"
)

const actionBundle = "Bundle download failed"

type bundleService struct {
	*flowBase
}

func NewBundleService(storages *store.ClientStorages, newslog adapter.NewslogAdapter, notifier Notifier, logger *logger.Logger, opts ...Option) BundleService {
	return &bundleService{flowBase: newFlowBase(storages, newslog, notifier, logger, opts...)}
}

// DownloadDailyBundle implements [BundleService]. A date that was downloaded
// before is downloaded again, overwriting the files, but is recorded once.
func (s *bundleService) DownloadDailyBundle(ctx context.Context, date string) (models.SyncReport, error) {
	startedAt := s.now()
	report := models.SyncReport{Kind: models.SyncKindBundle, Target: strings.TrimSpace(date)}

	date, err := models.ParseBundleDate(report.Target)
	if err != nil {
		err = fmt.Errorf("%w: %w", adapter.ErrInvalidDate, err)
		s.notify(failure(describeError(actionBundle, err)))
		return report, err
	}
	report.Target = date

	if err = s.lock.Lock(ctx); err != nil {
		return report, err
	}
	defer s.lock.Unlock()

	settings, err := s.loadIdentity(ctx, actionBundle)
	if err != nil {
		return report, err
	}
	report.Folder = settings.BundleFolderPath

	log := s.logger.With().Str("date", date).Logger()
	s.notify(info(fmt.Sprintf("Fetching newslog bundles for %s...", date)))

	bundles, err := s.adapter.ListDailyBundles(ctx, settings.Identity(), date)
	if err != nil {
		log.Err(err).Msg("failed to list daily bundles")
		s.notify(failure(describeError("Failed to fetch daily bundles", err)))
		s.recordRun(ctx, report, models.SyncStatusFailed, startedAt)
		return report, fmt.Errorf("list daily bundles: %w", err)
	}

	if len(bundles) == 0 {
		s.notify(info(fmt.Sprintf("No bundles found for %s.", date)))
		s.recordRun(ctx, report, models.SyncStatusEmpty, startedAt)
		return report, nil
	}

	s.notify(info(fmt.Sprintf("Found %d bundles with %d files. Downloading...", len(bundles), models.FileCount(bundles))))

	for _, bundle := range bundles {
		s.saveBundle(ctx, settings.BundleFolderPath, bundle, &report)
	}

	if !settings.Checkpoint().HasDownloaded(date) {
		if err = s.settings.AddDownloadedDate(ctx, date); err != nil {
			log.Err(err).Msg("failed to record the downloaded date")
			s.notify(failure(describeError("Failed to record the downloaded date", err)))
			s.recordRun(ctx, report, models.SyncStatusFailed, startedAt)
			return report, fmt.Errorf("record downloaded date: %w", err)
		}
	}

	summary := fmt.Sprintf("Bundle download complete! %d files saved, %d failed.", report.Succeeded, report.Failed)
	if report.Failed > 0 {
		s.notify(warning(summary))
	} else {
		s.notify(info(summary))
	}

	log.Info().Int("succeeded", report.Succeeded).Int("failed", report.Failed).Msg("daily bundles downloaded")
	s.recordRun(ctx, report, models.SyncStatusCompleted, startedAt)
	return report, nil
}

// saveBundle writes every file of bundle, counting each one in report.
func (s *bundleService) saveBundle(ctx context.Context, root string, bundle models.Bundle, report *models.SyncReport) {
	log := s.logger.With().Str("bundle", bundle.FolderName).Logger()

	folder, err := s.bundleFolder(root, bundle.FolderName)
	if err != nil {
		log.Warn().Err(err).Int("files", len(bundle.Files)).Msg("bundle folder not created")
		for range bundle.Files {
			report.Failure()
		}
		return
	}

	for _, file := range bundle.Files {
		if err = s.saveFile(ctx, folder, file); err != nil {
			log.Warn().Err(err).Str("file", file.Filename).Msg("bundle file not saved")
			report.Failure()
			continue
		}
		report.Success()
	}
}

func (s *bundleService) bundleFolder(root, name string) (string, error) {
	if !safeSegment(name) {
		return "", fmt.Errorf("%w: folder %q", ErrInvalidName, name)
	}

	folder := vaultPath(root, name)
	if err := s.vault.CreateFolder(folder); err != nil {
		return "", err
	}
	return folder, nil
}

func (s *bundleService) saveFile(ctx context.Context, folder string, file models.BundleFile) error {
	if !safeSegment(file.Filename) {
		return fmt.Errorf("%w: file %q", ErrInvalidName, file.Filename)
	}

	var content string
	switch {
	case file.URL != "":
		var err error
		if content, err = s.adapter.GetContent(ctx, file.URL); err != nil {
			return fmt.Errorf("download: %w", err)
		}
	case file.Content != "":
		content = file.Content
	default:
		return ErrNoContent
	}

	return writeNote(s.vault, vaultPath(folder, file.Filename), []byte(content))
}
