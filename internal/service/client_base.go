// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/newslog-sync/internal/adapter"
	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/internal/store"
	"github.com/MKhiriev/newslog-sync/internal/utils"
	"github.com/MKhiriev/newslog-sync/models"
)

// Option customises the services built by the constructors in this package.
type Option func(*flowBase)

// WithClock replaces time.Now. The highlights checkpoint is taken from it.
func WithClock(now func() time.Time) Option {
	return func(b *flowBase) {
		b.now = now
	}
}

// WithFlowLock makes the service share lock with other services.
func WithFlowLock(lock *FlowLock) Option {
	return func(b *flowBase) {
		b.lock = lock
	}
}

// flowBase holds what every flow needs.
type flowBase struct {
	settings store.SettingsRepository
	vault    store.Vault
	adapter  adapter.NewslogAdapter
	notifier Notifier

	lock  *FlowLock
	now   func() time.Time
	runID *utils.UUIDGenerator

	logger *logger.Logger
}

func newFlowBase(storages *store.ClientStorages, newslog adapter.NewslogAdapter, notifier Notifier, logger *logger.Logger, opts ...Option) *flowBase {
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}

	b := &flowBase{
		settings: storages.SettingsRepository,
		vault:    storages.Vault,
		adapter:  newslog,
		notifier: notifier,
		lock:     NewFlowLock(),
		now:      time.Now,
		runID:    utils.NewUUIDGenerator(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

func (b *flowBase) notify(n models.Notice) {
	b.notifier.Notify(n)
}

// loadIdentity loads the settings and checks the identity, notifying the user
// when it is missing.
func (b *flowBase) loadIdentity(ctx context.Context, action string) (models.Settings, error) {
	settings, err := b.settings.Load(ctx)
	if err != nil {
		b.notify(failure(describeError(action, err)))
		return models.Settings{}, err
	}

	if !settings.Identity().Complete() {
		b.notify(failure(describeError(action, ErrIdentityNotConfigured)))
		return models.Settings{}, ErrIdentityNotConfigured
	}

	return settings, nil
}

// recordRun appends the outcome of a flow to the run history. A failure to
// record is logged and otherwise ignored.
func (b *flowBase) recordRun(ctx context.Context, report models.SyncReport, status models.SyncStatus, startedAt time.Time) {
	run := models.SyncRun{
		ID:         b.runID.Generate(),
		Kind:       report.Kind,
		Target:     report.Target,
		Status:     status,
		Succeeded:  report.Succeeded,
		Failed:     report.Failed,
		StartedAt:  startedAt,
		FinishedAt: b.now(),
	}

	// a cancelled flow is still recorded
	if err := b.settings.SaveSyncRun(context.WithoutCancel(ctx), run); err != nil {
		b.logger.Warn().Err(err).Str("run_id", run.ID).Str("kind", string(run.Kind)).Msg("failed to record sync run")
		return
	}

	b.logger.Info().
		Str("run_id", run.ID).
		Str("kind", string(run.Kind)).
		Str("target", run.Target).
		Str("status", string(status)).
		Int("succeeded", run.Succeeded).
		Int("failed", run.Failed).
		Msg("sync run finished")
}
