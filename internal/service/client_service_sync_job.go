// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/newslog-sync/internal/logger"
)

const defaultSyncInterval = 15 * time.Minute

type clientSyncJob struct {
	highlights HighlightsService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a job that calls highlights.SyncHighlights on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(highlights HighlightsService, logger *logger.Logger) SyncJob {
	return &clientSyncJob{highlights: highlights, logger: logger}
}

// Start implements [SyncJob]. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", interval).Msg("periodic highlights sync started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// failures are already reported to the notifier
				if _, err := j.highlights.SyncHighlights(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("periodic highlights sync failed")
				}
			}
		}
	}()
}

// Stop implements [SyncJob]. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
