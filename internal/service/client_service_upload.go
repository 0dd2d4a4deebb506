// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/newslog-sync/internal/adapter"
	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/internal/store"
	"github.com/MKhiriev/newslog-sync/internal/utils"
	"github.com/MKhiriev/newslog-sync/models"
)

const actionUpload = "Upload failed"

type uploadService struct {
	*flowBase
}

func NewUploadService(storages *store.ClientStorages, newslog adapter.NewslogAdapter, notifier Notifier, logger *logger.Logger, opts ...Option) UploadService {
	return &uploadService{flowBase: newFlowBase(storages, newslog, notifier, logger, opts...)}
}

// UploadClippings implements [UploadService]. A file not named
// "My Clippings.txt" is uploaded anyway, after a warning.
func (s *uploadService) UploadClippings(ctx context.Context, localPath string) (models.SyncReport, error) {
	startedAt := s.now()
	report := models.SyncReport{Kind: models.SyncKindUpload}

	localPath = strings.TrimSpace(localPath)
	if localPath == "" {
		s.notify(failure("No file selected."))
		return report, ErrNoFileProvided
	}

	name := filepath.Base(localPath)
	report.Target = name
	if !utils.IsClippingsFile(name) {
		s.notify(warning(fmt.Sprintf("Warning: Selected file is not named %q", utils.ClippingsFileName)))
	}

	settings, err := s.loadIdentity(ctx, actionUpload)
	if err != nil {
		return report, err
	}

	log := s.logger.With().Str("file", name).Logger()

	s.notify(info(fmt.Sprintf("Reading %s...", name)))
	data, err := os.ReadFile(localPath)
	if err != nil {
		log.Err(err).Str("path", localPath).Msg("failed to read the clippings file")
		s.notify(failure("Error reading clippings file: " + err.Error()))
		return report, fmt.Errorf("read %s: %w", localPath, err)
	}

	uploadURL, err := s.adapter.RequestUploadURL(ctx, settings.Identity(), name)
	if err != nil {
		log.Err(err).Msg("failed to get upload url")
		s.notify(failure(describeError("Failed to get upload URL", err)))
		report.Failure()
		s.recordRun(ctx, report, models.SyncStatusFailed, startedAt)
		return report, fmt.Errorf("request upload url: %w", err)
	}

	contentType := utils.DetectContentType(data)
	if err = s.adapter.PutContent(ctx, uploadURL, data, contentType); err != nil {
		log.Err(err).Msg("failed to upload the clippings file")
		s.notify(failure(describeError("File upload failed", err)))
		report.Failure()
		s.recordRun(ctx, report, models.SyncStatusFailed, startedAt)
		return report, fmt.Errorf("upload: %w", err)
	}

	report.Success()
	log.Info().Int("bytes", len(data)).Str("content_type", contentType).Msg("clippings uploaded")
	s.notify(info("Clippings file sent to server. Processing will continue on the server."))
	s.recordRun(ctx, report, models.SyncStatusCompleted, startedAt)
	return report, nil
}
