// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/newslog-sync/internal/config"
	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/internal/service"
	"github.com/MKhiriev/newslog-sync/internal/tui"
	"github.com/MKhiriev/newslog-sync/models"
)

const historyLimit = 20

type App struct {
	services *service.ClientServices
	ui       UI
	cfg      *config.ClientConfig
	out      io.Writer

	logger *logger.Logger
}

// NewApp creates the application. ui may be nil when the configured action
// is not [config.ActionTUI].
func NewApp(services *service.ClientServices, ui UI, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) (Client, error) {
	if services == nil {
		return nil, errors.New("client: nil services")
	}
	if cfg.Command.Action == config.ActionTUI && ui == nil {
		return nil, errors.New("client: tui action without a ui")
	}

	return &App{services: services, ui: ui, cfg: cfg, out: out, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.applyOverrides(ctx); err != nil {
		return err
	}

	cmd := a.cfg.Command
	a.logger.Info().Str("action", cmd.Action).Msg("running action")

	switch cmd.Action {
	case config.ActionTUI:
		err := a.ui.Run(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err

	case config.ActionUpload:
		_, err := a.services.UploadService.UploadClippings(ctx, cmd.File)
		return err

	case config.ActionHighlights:
		_, err := a.services.HighlightsService.SyncHighlights(ctx)
		return err

	case config.ActionBundle:
		_, err := a.services.BundleService.DownloadDailyBundle(ctx, cmd.Date)
		return err

	case config.ActionSettings:
		return a.printSettings(ctx)

	case config.ActionResetHighlights:
		return a.services.SettingsService.ResetHighlightHistory(ctx)

	case config.ActionResetBundles:
		return a.services.SettingsService.ResetBundleHistory(ctx)

	case config.ActionHistory:
		return a.printHistory(ctx)

	case config.ActionWatch:
		return a.watch(ctx)
	}

	return fmt.Errorf("%w: unknown action %q", config.ErrInvalidCommand, cmd.Action)
}

// applyOverrides saves identity and folder values given through flags, env
// or the JSON file, so they persist for later runs.
func (a *App) applyOverrides(ctx context.Context) error {
	overrides := models.Settings{
		Username:         a.cfg.App.Username,
		APIKey:           a.cfg.App.APIKey,
		OutputFolderPath: a.cfg.App.HighlightsFolder,
		BundleFolderPath: a.cfg.App.BundleFolder,
	}

	if err := a.services.SettingsService.ApplyOverrides(ctx, overrides); err != nil {
		return fmt.Errorf("apply configuration overrides: %w", err)
	}
	return nil
}

// watch syncs highlights once, then periodically until ctx is cancelled.
func (a *App) watch(ctx context.Context) error {
	if _, err := a.services.HighlightsService.SyncHighlights(ctx); err != nil {
		// identity problems will not fix themselves
		if errors.Is(err, service.ErrIdentityNotConfigured) {
			return err
		}
		a.logger.Warn().Err(err).Msg("initial highlights sync failed")
	}

	a.services.SyncJob.Start(ctx, a.cfg.Command.Interval)
	defer a.services.SyncJob.Stop()

	<-ctx.Done()
	a.logger.Info().Msg("watch stopped")
	return nil
}

func (a *App) printSettings(ctx context.Context) error {
	s, err := a.services.SettingsService.Get(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	fmt.Fprintf(a.out, "Username:          %s\n", dash(s.Username))
	fmt.Fprintf(a.out, "API key:           %s\n", s.Identity().String())
	fmt.Fprintf(a.out, "Highlights folder: %s\n", dash(s.OutputFolderPath))
	fmt.Fprintf(a.out, "Bundle folder:     %s\n", dash(s.BundleFolderPath))
	fmt.Fprintf(a.out, "Last sync:         %s\n", dash(s.LastSyncDate))
	fmt.Fprintf(a.out, "Downloaded dates:  %s\n", dash(strings.Join(s.DownloadedDates, ", ")))
	return nil
}

func (a *App) printHistory(ctx context.Context) error {
	runs, err := a.services.SettingsService.History(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(a.out, "No sync runs yet.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(a.out, "%s  %-10s  %-16s  %-9s  %d saved, %d failed\n",
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Kind,
			dash(run.Target),
			run.Status,
			run.Succeeded,
			run.Failed,
		)
	}
	return nil
}

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
