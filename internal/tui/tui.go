// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end: a menu for the three
// sync actions, a settings form, the run history and a status line fed by
// the service notices.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/internal/service"
	"github.com/MKhiriev/newslog-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

// Page names used with [NavigateTo].
const (
	pageMenu     = "menu"
	pageUpload   = "upload"
	pageBundle   = "bundle"
	pageSettings = "settings"
	pageHistory  = "history"
)

type TUI struct {
	services  *service.ClientServices
	notifier  *Notifier
	vaultRoot string
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New creates the TUI. notifier must be the one the services were built
// with; it is attached to the program while Run is active.
func New(services *service.ClientServices, notifier *Notifier, vaultRoot string, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil services")
	}
	if notifier == nil {
		notifier = NewNotifier()
	}

	return &TUI{
		services:  services,
		notifier:  notifier,
		vaultRoot: vaultRoot,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the menu and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageMenu, t.buildInfo, t.vaultRoot)

	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.notifier.attach(program)
	defer t.notifier.attach(nil)

	t.logger.Debug().Msg("tui started")
	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageMenu:     NewMenuModel(ctx, t.services.HighlightsService),
		pageUpload:   NewUploadModel(ctx, t.services.UploadService),
		pageBundle:   NewBundleModel(ctx, t.services.BundleService, time.Now),
		pageSettings: NewSettingsModel(ctx, t.services.SettingsService),
		pageHistory:  NewHistoryModel(ctx, t.services.SettingsService),
	}
}
