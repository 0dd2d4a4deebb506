// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/newslog-sync/internal/config"
	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/internal/service"
	"github.com/MKhiriev/newslog-sync/internal/tui"
	"github.com/MKhiriev/newslog-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettings struct {
	service.SettingsService

	current   models.Settings
	overrides *models.Settings
	resets    []string
	runs      []models.SyncRun
	limit     int
	err       error
}

func (f *fakeSettings) Get(context.Context) (models.Settings, error) {
	return f.current, f.err
}

func (f *fakeSettings) ApplyOverrides(_ context.Context, o models.Settings) error {
	f.overrides = &o
	return f.err
}

func (f *fakeSettings) ResetHighlightHistory(context.Context) error {
	f.resets = append(f.resets, "highlights")
	return nil
}

func (f *fakeSettings) ResetBundleHistory(context.Context) error {
	f.resets = append(f.resets, "bundles")
	return nil
}

func (f *fakeSettings) History(_ context.Context, limit int) ([]models.SyncRun, error) {
	f.limit = limit
	return f.runs, nil
}

type fakeHighlights struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeHighlights) SyncHighlights(context.Context) (models.SyncReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return models.SyncReport{Kind: models.SyncKindHighlights}, f.err
}

type fakeUpload struct{ path string }

func (f *fakeUpload) UploadClippings(_ context.Context, p string) (models.SyncReport, error) {
	f.path = p
	return models.SyncReport{Kind: models.SyncKindUpload}, nil
}

type fakeBundle struct{ date string }

func (f *fakeBundle) DownloadDailyBundle(_ context.Context, date string) (models.SyncReport, error) {
	f.date = date
	return models.SyncReport{Kind: models.SyncKindBundle, Target: date}, nil
}

type fakeJob struct {
	started chan time.Duration
	stopped bool
	mu      sync.Mutex
}

func (f *fakeJob) Start(_ context.Context, interval time.Duration) {
	f.started <- interval
}

func (f *fakeJob) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

type fakeUI struct{ err error }

func (f *fakeUI) Run(context.Context) error { return f.err }

type fixture struct {
	settings   *fakeSettings
	highlights *fakeHighlights
	upload     *fakeUpload
	bundle     *fakeBundle
	job        *fakeJob
	out        *bytes.Buffer
}

func newFixture() *fixture {
	return &fixture{
		settings:   &fakeSettings{},
		highlights: &fakeHighlights{},
		upload:     &fakeUpload{},
		bundle:     &fakeBundle{},
		job:        &fakeJob{started: make(chan time.Duration, 1)},
		out:        &bytes.Buffer{},
	}
}

func (f *fixture) app(t *testing.T, cfg *config.ClientConfig, ui UI) Client {
	t.Helper()

	services := &service.ClientServices{
		SettingsService:   f.settings,
		UploadService:     f.upload,
		HighlightsService: f.highlights,
		BundleService:     f.bundle,
		SyncJob:           f.job,
	}
	app, err := NewApp(services, ui, cfg, f.out, logger.Nop())
	require.NoError(t, err)
	return app
}

func command(action string) *config.ClientConfig {
	return &config.ClientConfig{Command: config.Command{Action: action}}
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, nil, command(config.ActionHighlights), &bytes.Buffer{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, command(config.ActionTUI), &bytes.Buffer{}, logger.Nop())
	assert.Error(t, err, "tui action needs a ui")

	_, err = NewApp(&service.ClientServices{}, nil, command(config.ActionHistory), &bytes.Buffer{}, logger.Nop())
	assert.NoError(t, err)
}

func TestRun_AppliesOverridesFirst(t *testing.T) {
	f := newFixture()
	cfg := command(config.ActionHighlights)
	cfg.App = config.ClientApp{
		Username:         "reader",
		APIKey:           "secret",
		HighlightsFolder: "Kindle",
		BundleFolder:     "Daily",
	}

	require.NoError(t, f.app(t, cfg, nil).Run(context.Background()))

	require.NotNil(t, f.settings.overrides)
	assert.Equal(t, models.Settings{
		Username:         "reader",
		APIKey:           "secret",
		OutputFolderPath: "Kindle",
		BundleFolderPath: "Daily",
	}, *f.settings.overrides)
	assert.Equal(t, 1, f.highlights.calls)
}

func TestRun_OverridesFailure(t *testing.T) {
	f := newFixture()
	f.settings.err = errors.New("disk full")

	err := f.app(t, command(config.ActionHighlights), nil).Run(context.Background())

	require.Error(t, err)
	assert.Zero(t, f.highlights.calls)
}

func TestRun_Actions(t *testing.T) {
	t.Run("upload passes the file", func(t *testing.T) {
		f := newFixture()
		cfg := command(config.ActionUpload)
		cfg.Command.File = "/media/kindle/My Clippings.txt"

		require.NoError(t, f.app(t, cfg, nil).Run(context.Background()))
		assert.Equal(t, "/media/kindle/My Clippings.txt", f.upload.path)
	})

	t.Run("bundle passes the date", func(t *testing.T) {
		f := newFixture()
		cfg := command(config.ActionBundle)
		cfg.Command.Date = "2026-03-14"

		require.NoError(t, f.app(t, cfg, nil).Run(context.Background()))
		assert.Equal(t, "2026-03-14", f.bundle.date)
	})

	t.Run("highlights error is returned", func(t *testing.T) {
		f := newFixture()
		f.highlights.err = service.ErrIdentityNotConfigured

		err := f.app(t, command(config.ActionHighlights), nil).Run(context.Background())
		assert.ErrorIs(t, err, service.ErrIdentityNotConfigured)
	})

	t.Run("resets", func(t *testing.T) {
		f := newFixture()

		require.NoError(t, f.app(t, command(config.ActionResetHighlights), nil).Run(context.Background()))
		require.NoError(t, f.app(t, command(config.ActionResetBundles), nil).Run(context.Background()))
		assert.Equal(t, []string{"highlights", "bundles"}, f.settings.resets)
	})

	t.Run("unknown action", func(t *testing.T) {
		f := newFixture()

		err := f.app(t, command("sync-everything"), nil).Run(context.Background())
		assert.ErrorIs(t, err, config.ErrInvalidCommand)
	})
}

func TestRun_TUI(t *testing.T) {
	t.Run("user quit is not an error", func(t *testing.T) {
		f := newFixture()
		err := f.app(t, command(config.ActionTUI), &fakeUI{err: tui.ErrUserQuit}).Run(context.Background())
		assert.NoError(t, err)
	})

	t.Run("other errors are returned", func(t *testing.T) {
		f := newFixture()
		boom := errors.New("no tty")
		err := f.app(t, command(config.ActionTUI), &fakeUI{err: boom}).Run(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestRun_PrintSettingsMasksKey(t *testing.T) {
	f := newFixture()
	f.settings.current = models.Settings{
		Username:         "reader",
		APIKey:           "secret",
		OutputFolderPath: "Kindle",
		LastSyncDate:     "2026-03-14T09:26:53.589Z",
		DownloadedDates:  []string{"2026-03-13", "2026-03-14"},
	}

	require.NoError(t, f.app(t, command(config.ActionSettings), nil).Run(context.Background()))

	out := f.out.String()
	assert.Contains(t, out, "reader:***")
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "Kindle")
	assert.Contains(t, out, "2026-03-14T09:26:53.589Z")
	assert.Contains(t, out, "2026-03-13, 2026-03-14")
	assert.Contains(t, out, "Bundle folder:     -")
}

func TestRun_PrintHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		f := newFixture()

		require.NoError(t, f.app(t, command(config.ActionHistory), nil).Run(context.Background()))
		assert.Equal(t, "No sync runs yet.\n", f.out.String())
		assert.Equal(t, historyLimit, f.settings.limit)
	})

	t.Run("rows", func(t *testing.T) {
		f := newFixture()
		f.settings.runs = []models.SyncRun{{
			Kind:      models.SyncKindBundle,
			Target:    "2026-03-14",
			Status:    models.SyncStatusCompleted,
			Succeeded: 5,
			Failed:    1,
			StartedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		}}

		require.NoError(t, f.app(t, command(config.ActionHistory), nil).Run(context.Background()))
		out := f.out.String()
		assert.Contains(t, out, "bundle")
		assert.Contains(t, out, "2026-03-14")
		assert.Contains(t, out, "completed")
		assert.Contains(t, out, "5 saved, 1 failed")
	})
}

func TestRun_Watch(t *testing.T) {
	f := newFixture()
	cfg := command(config.ActionWatch)
	cfg.Command.Interval = 5 * time.Minute
	app := f.app(t, cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	select {
	case interval := <-f.job.started:
		assert.Equal(t, 5*time.Minute, interval)
	case <-time.After(2 * time.Second):
		t.Fatal("sync job was not started")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not return after cancel")
	}

	f.highlights.mu.Lock()
	assert.Equal(t, 1, f.highlights.calls, "one sync before the job starts")
	f.highlights.mu.Unlock()

	f.job.mu.Lock()
	assert.True(t, f.job.stopped)
	f.job.mu.Unlock()
}

func TestRun_WatchStopsOnMissingIdentity(t *testing.T) {
	f := newFixture()
	f.highlights.err = service.ErrIdentityNotConfigured

	err := f.app(t, command(config.ActionWatch), nil).Run(context.Background())

	assert.ErrorIs(t, err, service.ErrIdentityNotConfigured)
	assert.Empty(t, f.job.started)
}

func TestRun_WatchKeepsGoingAfterOtherErrors(t *testing.T) {
	f := newFixture()
	f.highlights.err = errors.New("server unavailable")
	app := f.app(t, command(config.ActionWatch), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	select {
	case <-f.job.started:
	case <-time.After(2 * time.Second):
		t.Fatal("sync job was not started")
	}
	cancel()
	assert.NoError(t, <-done)
}
