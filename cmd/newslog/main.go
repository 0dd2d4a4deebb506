// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/newslog-sync/internal/adapter"
	"github.com/MKhiriev/newslog-sync/internal/client"
	"github.com/MKhiriev/newslog-sync/internal/config"
	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/internal/service"
	"github.com/MKhiriev/newslog-sync/internal/store"
	"github.com/MKhiriev/newslog-sync/internal/tui"
	"github.com/MKhiriev/newslog-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("newslog-sync", cfg.Log.File)
	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Warn().Err(err).Str("level", cfg.Log.Level).Msg("unknown log level, keeping default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, buildInfo, log); err != nil {
		log.Error().Err(err).Str("action", cfg.Command.Action).Msg("client run error")
		fmt.Fprintf(os.Stderr, "newslog-sync: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	newslog, err := adapter.NewHTTPNewslogAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create newslog adapter: %w", err)
	}

	// notices go to the status line in the TUI and to stdout otherwise
	tuiNotifier := tui.NewNotifier()
	var userNotifier service.Notifier = client.NewLineNotifier(os.Stdout)
	if cfg.Command.Action == config.ActionTUI {
		userNotifier = tuiNotifier
	}
	notifier := service.MultiNotifier{userNotifier, service.NewLogNotifier(log)}

	services := service.NewClientServices(storages, newslog, notifier, log)

	ui, err := tui.New(services, tuiNotifier, cfg.Storage.VaultRoot, buildInfo, log)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	app, err := client.NewApp(services, ui, cfg, os.Stdout, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
