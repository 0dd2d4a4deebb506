// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/newslog-sync/internal/adapter"
	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDate = "2026-03-14"

func TestDownloadDailyBundle_SavesEveryFile(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewBundleService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)

	bundles := []models.Bundle{
		{FolderName: "Morning", Files: []models.BundleFile{
			{Filename: "world.md", URL: "https://cdn/world"},
			{Filename: "tech.md", Content: "inline tech"},
		}},
		{FolderName: "Evening", Files: []models.BundleFile{
			{Filename: "sport.md", URL: "https://cdn/sport"},
		}},
	}

	f.settings.EXPECT().Load(gomock.Any()).Return(configuredSettings(), nil)
	f.adapter.EXPECT().ListDailyBundles(gomock.Any(), testIdentity, testDate).Return(bundles, nil)
	f.adapter.EXPECT().GetContent(gomock.Any(), "https://cdn/world").Return("world news", nil)
	f.adapter.EXPECT().GetContent(gomock.Any(), "https://cdn/sport").Return("sport news", nil)
	f.settings.EXPECT().AddDownloadedDate(gomock.Any(), testDate).Return(nil)

	report, err := svc.DownloadDailyBundle(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Succeeded)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, testDate, report.Target)
	assert.Equal(t, "Bundles", report.Folder)

	assert.Equal(t, "world news", f.readNote(t, "Bundles/Morning/world.md"))
	assert.Equal(t, "inline tech", f.readNote(t, "Bundles/Morning/tech.md"))
	assert.Equal(t, "sport news", f.readNote(t, "Bundles/Evening/sport.md"))

	msgs := f.notices.messages()
	assert.Contains(t, msgs, "Fetching newslog bundles for 2026-03-14...")
	assert.Contains(t, msgs, "Found 2 bundles with 3 files. Downloading...")
	assert.Equal(t, "Bundle download complete! 3 files saved, 0 failed.", f.notices.last().Message)

	run := f.lastRun(t)
	assert.Equal(t, models.SyncKindBundle, run.Kind)
	assert.Equal(t, testDate, run.Target)
	assert.Equal(t, models.SyncStatusCompleted, run.Status)
}

func TestDownloadDailyBundle_URLPreferredOverInline(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewBundleService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)

	bundles := []models.Bundle{{FolderName: "Morning", Files: []models.BundleFile{
		{Filename: "a.md", URL: "https://cdn/a", Content: "inline"},
	}}}

	f.settings.EXPECT().Load(gomock.Any()).Return(configuredSettings(), nil)
	f.adapter.EXPECT().ListDailyBundles(gomock.Any(), testIdentity, testDate).Return(bundles, nil)
	f.adapter.EXPECT().GetContent(gomock.Any(), "https://cdn/a").Return("remote", nil)
	f.settings.EXPECT().AddDownloadedDate(gomock.Any(), testDate).Return(nil)

	_, err := svc.DownloadDailyBundle(context.Background(), testDate)
	require.NoError(t, err)
	assert.Equal(t, "remote", f.readNote(t, "Bundles/Morning/a.md"))
}

func TestDownloadDailyBundle_RepeatedDateNotDuplicated(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewBundleService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)

	require.NoError(t, f.vault.CreateFolder("Bundles/Morning"))
	require.NoError(t, f.vault.CreateFile("Bundles/Morning/a.md", []byte("old")))

	settings := configuredSettings()
	settings.DownloadedDates = []string{testDate}

	f.settings.EXPECT().Load(gomock.Any()).Return(settings, nil)
	f.adapter.EXPECT().ListDailyBundles(gomock.Any(), testIdentity, testDate).Return([]models.Bundle{
		{FolderName: "Morning", Files: []models.BundleFile{{Filename: "a.md", Content: "new"}}},
	}, nil)
	f.settings.EXPECT().AddDownloadedDate(gomock.Any(), gomock.Any()).Times(0)

	report, err := svc.DownloadDailyBundle(context.Background(), testDate)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, "new", f.readNote(t, "Bundles/Morning/a.md"))
}

func TestDownloadDailyBundle_NoBundles_DatesUnchanged(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewBundleService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)

	f.settings.EXPECT().Load(gomock.Any()).Return(configuredSettings(), nil)
	f.adapter.EXPECT().ListDailyBundles(gomock.Any(), testIdentity, testDate).Return([]models.Bundle{}, nil)
	f.settings.EXPECT().AddDownloadedDate(gomock.Any(), gomock.Any()).Times(0)

	report, err := svc.DownloadDailyBundle(context.Background(), testDate)
	require.NoError(t, err)
	assert.Zero(t, report.Total)
	assert.Equal(t, "No bundles found for 2026-03-14.", f.notices.last().Message)
	assert.Equal(t, models.SyncStatusEmpty, f.lastRun(t).Status)
}

func TestDownloadDailyBundle_EmptyBundleStillRecordsDate(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewBundleService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)

	f.settings.EXPECT().Load(gomock.Any()).Return(configuredSettings(), nil)
	f.adapter.EXPECT().ListDailyBundles(gomock.Any(), testIdentity, testDate).
		Return([]models.Bundle{{FolderName: "Morning"}}, nil)
	f.settings.EXPECT().AddDownloadedDate(gomock.Any(), testDate).Return(nil)

	report, err := svc.DownloadDailyBundle(context.Background(), testDate)
	require.NoError(t, err)
	assert.Zero(t, report.Total)
	assert.True(t, f.noteExists("Bundles/Morning"))
}

func TestDownloadDailyBundle_FileFailures(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewBundleService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)

	bundles := []models.Bundle{
		{FolderName: "Morning", Files: []models.BundleFile{
			{Filename: "down.md", URL: "https://cdn/down"},
			{Filename: "empty.md"},
			{Filename: "../escape.md", Content: "x"},
			{Filename: "ok.md", Content: "fine"},
		}},
		{FolderName: "..", Files: []models.BundleFile{
			{Filename: "a.md", Content: "x"},
			{Filename: "b.md", Content: "y"},
		}},
	}

	f.settings.EXPECT().Load(gomock.Any()).Return(configuredSettings(), nil)
	f.adapter.EXPECT().ListDailyBundles(gomock.Any(), testIdentity, testDate).Return(bundles, nil)
	f.adapter.EXPECT().GetContent(gomock.Any(), "https://cdn/down").
		Return("", fmt.Errorf("get content: %w", &adapter.StatusError{StatusCode: 403}))
	f.settings.EXPECT().AddDownloadedDate(gomock.Any(), testDate).Return(nil)

	report, err := svc.DownloadDailyBundle(context.Background(), testDate)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 5, report.Failed)
	assert.Equal(t, "fine", f.readNote(t, "Bundles/Morning/ok.md"))
	assert.False(t, f.noteExists("Bundles/escape.md"))
	assert.False(t, f.noteExists("a.md"))

	last := f.notices.last()
	assert.Equal(t, models.NoticeWarning, last.Level)
	assert.Equal(t, "Bundle download complete! 1 files saved, 5 failed.", last.Message)
}

func TestDownloadDailyBundle_InvalidDate(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewBundleService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)

	for _, date := range []string{"", "14-03-2026", "2026-02-30", "yesterday"} {
		_, err := svc.DownloadDailyBundle(context.Background(), date)
		require.ErrorIs(t, err, adapter.ErrInvalidDate, date)
	}

	assert.Equal(t, "Bundle download failed: date must be in YYYY-MM-DD format.", f.notices.last().Message)
}

func TestDownloadDailyBundle_MissingIdentity(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewBundleService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)

	f.settings.EXPECT().Load(gomock.Any()).Return(models.Settings{BundleFolderPath: "Bundles"}, nil)

	_, err := svc.DownloadDailyBundle(context.Background(), testDate)
	require.ErrorIs(t, err, ErrIdentityNotConfigured)
	assert.Equal(t, "Username or API Key not configured in plugin settings.", f.notices.last().Message)
}

func TestDownloadDailyBundle_ListFails(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewBundleService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)

	f.settings.EXPECT().Load(gomock.Any()).Return(configuredSettings(), nil)
	f.adapter.EXPECT().ListDailyBundles(gomock.Any(), testIdentity, testDate).
		Return(nil, fmt.Errorf("%w: dial tcp: refused", adapter.ErrNetwork))
	f.settings.EXPECT().AddDownloadedDate(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.DownloadDailyBundle(context.Background(), testDate)
	require.ErrorIs(t, err, adapter.ErrNetwork)
	assert.Equal(t, "Failed to fetch daily bundles: network error. Check your connection.", f.notices.last().Message)
	assert.Equal(t, models.SyncStatusFailed, f.lastRun(t).Status)
}
