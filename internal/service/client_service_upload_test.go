// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/newslog-sync/internal/adapter"
	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const clippings = "Dune (Frank Herbert)\n- Your Highlight on page 3 | Added on Monday\n\nFear is the mind-killer.\n==========\n"

func writeClippings(t *testing.T, name string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(clippings), 0o600))
	return p
}

func TestUploadClippings_Success(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewUploadService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)
	p := writeClippings(t, "My Clippings.txt")

	f.settings.EXPECT().Load(gomock.Any()).Return(configuredSettings(), nil)
	f.adapter.EXPECT().RequestUploadURL(gomock.Any(), testIdentity, "My Clippings.txt").Return("https://s3/put?sig=1", nil)
	f.adapter.EXPECT().PutContent(gomock.Any(), "https://s3/put?sig=1", []byte(clippings), "text/plain; charset=utf-8").Return(nil)

	report, err := svc.UploadClippings(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, "My Clippings.txt", report.Target)
	for _, n := range f.notices.notices {
		assert.NotEqual(t, models.NoticeWarning, n.Level, n.Message)
	}
	assert.Equal(t, "Clippings file sent to server. Processing will continue on the server.", f.notices.last().Message)

	run := f.lastRun(t)
	assert.Equal(t, models.SyncKindUpload, run.Kind)
	assert.Equal(t, models.SyncStatusCompleted, run.Status)
}

func TestUploadClippings_OtherNameWarnsAndUploads(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewUploadService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)
	p := writeClippings(t, "notes.txt")

	f.settings.EXPECT().Load(gomock.Any()).Return(configuredSettings(), nil)
	f.adapter.EXPECT().RequestUploadURL(gomock.Any(), testIdentity, "notes.txt").Return("https://s3/put", nil)
	f.adapter.EXPECT().PutContent(gomock.Any(), "https://s3/put", gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.UploadClippings(context.Background(), p)
	require.NoError(t, err)

	assert.Contains(t, f.notices.messages(), `Warning: Selected file is not named "My Clippings.txt"`)
}

func TestUploadClippings_NoFile(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewUploadService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)

	_, err := svc.UploadClippings(context.Background(), "  ")
	require.ErrorIs(t, err, ErrNoFileProvided)
	assert.Equal(t, "No file selected.", f.notices.last().Message)
}

func TestUploadClippings_MissingIdentity(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewUploadService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)
	p := writeClippings(t, "My Clippings.txt")

	f.settings.EXPECT().Load(gomock.Any()).Return(models.Settings{Username: "reader"}, nil)

	_, err := svc.UploadClippings(context.Background(), p)
	require.ErrorIs(t, err, ErrIdentityNotConfigured)
	assert.Empty(t, f.runs)
}

func TestUploadClippings_UnreadableFile(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewUploadService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)

	f.settings.EXPECT().Load(gomock.Any()).Return(configuredSettings(), nil)

	_, err := svc.UploadClippings(context.Background(), filepath.Join(t.TempDir(), "My Clippings.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, f.notices.last().Message, "Error reading clippings file: ")
}

func TestUploadClippings_UploadURLFails(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewUploadService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)
	p := writeClippings(t, "My Clippings.txt")

	f.settings.EXPECT().Load(gomock.Any()).Return(configuredSettings(), nil)
	f.adapter.EXPECT().RequestUploadURL(gomock.Any(), testIdentity, gomock.Any()).
		Return("", fmt.Errorf("request upload url: %w", &adapter.StatusError{StatusCode: 401}))

	report, err := svc.UploadClippings(context.Background(), p)
	require.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, "Failed to get upload URL: the server rejected the credentials (HTTP 401). Check username and API key.", f.notices.last().Message)
	assert.Equal(t, models.SyncStatusFailed, f.lastRun(t).Status)
}

func TestUploadClippings_PutFails(t *testing.T) {
	f := newFlowFixture(t)
	svc := NewUploadService(f.storages, f.adapter, f.notices, logger.Nop(), f.opts()...)
	p := writeClippings(t, "My Clippings.txt")

	f.settings.EXPECT().Load(gomock.Any()).Return(configuredSettings(), nil)
	f.adapter.EXPECT().RequestUploadURL(gomock.Any(), testIdentity, gomock.Any()).Return("https://s3/put", nil)
	f.adapter.EXPECT().PutContent(gomock.Any(), "https://s3/put", gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("put content: %w", &adapter.StatusError{StatusCode: 502}))

	_, err := svc.UploadClippings(context.Background(), p)
	require.ErrorIs(t, err, adapter.ErrBadGateway)
	assert.Equal(t, "File upload failed: server returned HTTP 502.", f.notices.last().Message)
}
