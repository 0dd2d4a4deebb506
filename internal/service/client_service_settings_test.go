// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/internal/store"
	"github.com/MKhiriev/newslog-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsService_SetIdentity_Trims(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewSettingsService(f.storages, f.notices, logger.Nop())

	f.settings.EXPECT().SetValues(gomock.Any(), map[string]string{
		store.KeyUsername: "reader",
		store.KeyAPIKey:   "secret",
	}).Return(nil)

	require.NoError(t, svc.SetIdentity(context.Background(), models.Identity{Username: " reader ", APIKey: "secret\n"}))
}

func TestSettingsService_SetFolders(t *testing.T) {
	tests := []struct {
		name    string
		folder  string
		want    string
		wantErr error
	}{
		{name: "plain", folder: "Highlights", want: "Highlights"},
		{name: "nested with slashes", folder: "/Notes/Highlights/", want: "Notes/Highlights"},
		{name: "backslashes", folder: `Notes\Bundles`, want: "Notes/Bundles"},
		{name: "vault root", folder: "", want: ""},
		{name: "parent reference", folder: "../outside", wantErr: ErrInvalidFolder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFlowFixture(t)
			svc := NewSettingsService(f.storages, f.notices, logger.Nop())

			if tt.wantErr == nil {
				f.settings.EXPECT().SetValues(gomock.Any(), map[string]string{store.KeyOutputFolderPath: tt.want}).Return(nil)
				f.settings.EXPECT().SetValues(gomock.Any(), map[string]string{store.KeyBundleFolderPath: tt.want}).Return(nil)
			}

			err := svc.SetOutputFolder(context.Background(), tt.folder)
			require.ErrorIs(t, err, tt.wantErr)
			err = svc.SetBundleFolder(context.Background(), tt.folder)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSettingsService_ResetHighlightHistory(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewSettingsService(f.storages, f.notices, logger.Nop())

	f.settings.EXPECT().SetLastSyncDate(gomock.Any(), "").Return(nil)

	require.NoError(t, svc.ResetHighlightHistory(context.Background()))
	assert.Equal(t, models.NoticeInfo, f.notices.last().Level)
}

func TestSettingsService_ResetHighlightHistory_Fails(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewSettingsService(f.storages, f.notices, logger.Nop())

	f.settings.EXPECT().SetLastSyncDate(gomock.Any(), "").Return(errors.New("readonly database"))

	require.Error(t, svc.ResetHighlightHistory(context.Background()))
	assert.Equal(t, models.NoticeError, f.notices.last().Level)
}

func TestSettingsService_ResetBundleHistory(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewSettingsService(f.storages, f.notices, logger.Nop())

	f.settings.EXPECT().ClearDownloadedDates(gomock.Any()).Return(nil)

	require.NoError(t, svc.ResetBundleHistory(context.Background()))
	assert.Equal(t, "Bundle download history reset.", f.notices.last().Message)
}

func TestSettingsService_Reset_WaitsForRunningFlow(t *testing.T) {
	f := newFlowFixture(t)
	lock := NewFlowLock()
	svc := NewSettingsService(f.storages, f.notices, logger.Nop(), WithFlowLock(lock))

	require.True(t, lock.TryLock())
	defer lock.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, svc.ResetHighlightHistory(ctx), context.Canceled)
	require.ErrorIs(t, svc.ResetBundleHistory(ctx), context.Canceled)
}

func TestSettingsService_ApplyOverrides(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewSettingsService(f.storages, f.notices, logger.Nop())

	f.settings.EXPECT().SetValues(gomock.Any(), map[string]string{
		store.KeyUsername:         "reader",
		store.KeyBundleFolderPath: "Daily",
	}).Return(nil)

	err := svc.ApplyOverrides(context.Background(), models.Settings{Username: "reader", BundleFolderPath: "Daily/"})
	require.NoError(t, err)
}

func TestSettingsService_ApplyOverrides_Nothing(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewSettingsService(f.storages, f.notices, logger.Nop())

	// no SetValues expected
	require.NoError(t, svc.ApplyOverrides(context.Background(), models.Settings{}))
}

func TestSettingsService_ApplyOverrides_BadFolder(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewSettingsService(f.storages, f.notices, logger.Nop())

	err := svc.ApplyOverrides(context.Background(), models.Settings{OutputFolderPath: "a/../../b"})
	require.ErrorIs(t, err, ErrInvalidFolder)
}

func TestSettingsService_GetAndHistory(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewSettingsService(f.storages, f.notices, logger.Nop())

	f.settings.EXPECT().Load(gomock.Any()).Return(configuredSettings(), nil)
	f.settings.EXPECT().ListSyncRuns(gomock.Any(), 5).Return([]models.SyncRun{{ID: "r1"}}, nil)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Highlights", got.OutputFolderPath)

	runs, err := svc.History(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "r1", runs[0].ID)
}
