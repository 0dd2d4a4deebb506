// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/internal/store"
	"github.com/MKhiriev/newslog-sync/models"
)

type settingsService struct {
	*flowBase
}

func NewSettingsService(storages *store.ClientStorages, notifier Notifier, logger *logger.Logger, opts ...Option) SettingsService {
	return &settingsService{flowBase: newFlowBase(storages, nil, notifier, logger, opts...)}
}

func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	return s.settings.Load(ctx)
}

func (s *settingsService) SetIdentity(ctx context.Context, identity models.Identity) error {
	values := map[string]string{
		store.KeyUsername: strings.TrimSpace(identity.Username),
		store.KeyAPIKey:   strings.TrimSpace(identity.APIKey),
	}
	if err := s.settings.SetValues(ctx, values); err != nil {
		return fmt.Errorf("save identity: %w", err)
	}

	// never log the key itself
	s.logger.Info().Str("username", values[store.KeyUsername]).Bool("api_key_set", values[store.KeyAPIKey] != "").Msg("identity updated")
	return nil
}

func (s *settingsService) SetOutputFolder(ctx context.Context, folder string) error {
	return s.setFolder(ctx, store.KeyOutputFolderPath, folder)
}

func (s *settingsService) SetBundleFolder(ctx context.Context, folder string) error {
	return s.setFolder(ctx, store.KeyBundleFolderPath, folder)
}

func (s *settingsService) setFolder(ctx context.Context, key, folder string) error {
	clean, err := cleanFolder(folder)
	if err != nil {
		return err
	}

	if err = s.settings.SetValues(ctx, map[string]string{key: clean}); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	s.logger.Info().Str(key, clean).Msg("folder updated")
	return nil
}

func (s *settingsService) ResetHighlightHistory(ctx context.Context) error {
	if err := s.lock.Lock(ctx); err != nil {
		return err
	}
	defer s.lock.Unlock()

	if err := s.settings.SetLastSyncDate(ctx, ""); err != nil {
		s.notify(failure(describeError("Failed to reset highlight history", err)))
		return fmt.Errorf("reset highlight history: %w", err)
	}

	s.notify(info("Highlight sync history reset. The next sync downloads all highlights."))
	return nil
}

func (s *settingsService) ResetBundleHistory(ctx context.Context) error {
	if err := s.lock.Lock(ctx); err != nil {
		return err
	}
	defer s.lock.Unlock()

	if err := s.settings.ClearDownloadedDates(ctx); err != nil {
		s.notify(failure(describeError("Failed to reset bundle history", err)))
		return fmt.Errorf("reset bundle history: %w", err)
	}

	s.notify(info("Bundle download history reset."))
	return nil
}

func (s *settingsService) ApplyOverrides(ctx context.Context, overrides models.Settings) error {
	values := make(map[string]string)

	if v := strings.TrimSpace(overrides.Username); v != "" {
		values[store.KeyUsername] = v
	}
	if v := strings.TrimSpace(overrides.APIKey); v != "" {
		values[store.KeyAPIKey] = v
	}
	for key, folder := range map[string]string{
		store.KeyOutputFolderPath: overrides.OutputFolderPath,
		store.KeyBundleFolderPath: overrides.BundleFolderPath,
	} {
		if strings.TrimSpace(folder) == "" {
			continue
		}
		clean, err := cleanFolder(folder)
		if err != nil {
			return err
		}
		values[key] = clean
	}

	if len(values) == 0 {
		return nil
	}

	if err := s.settings.SetValues(ctx, values); err != nil {
		return fmt.Errorf("apply overrides: %w", err)
	}

	s.logger.Debug().Int("values", len(values)).Msg("configuration overrides saved")
	return nil
}

func (s *settingsService) History(ctx context.Context, limit int) ([]models.SyncRun, error) {
	return s.settings.ListSyncRuns(ctx, limit)
}
