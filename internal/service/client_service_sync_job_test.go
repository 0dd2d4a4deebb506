// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyHighlights counts SyncHighlights calls.
type spyHighlights struct {
	calls atomic.Int64
	err   error
}

func (s *spyHighlights) SyncHighlights(_ context.Context) (models.SyncReport, error) {
	s.calls.Add(1)
	return models.SyncReport{Kind: models.SyncKindHighlights}, s.err
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	job := NewClientSyncJob(&spyHighlights{}, logger.Nop())
	require.NotNil(t, job)

	var _ SyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_CallsSyncHighlights(t *testing.T) {
	spy := &spyHighlights{}
	job := NewClientSyncJob(spy, logger.Nop())

	// about five ticks in 55ms
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "SyncHighlights called %d times", got)
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyHighlights{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls after Stop")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spyHighlights{}, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Stop_Twice_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spyHighlights{}, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)

	assert.NotPanics(t, func() {
		job.Stop()
		job.Stop()
	})
}

func TestClientSyncJob_ContextCancel_StopsGoroutine(t *testing.T) {
	spy := &spyHighlights{}
	job := NewClientSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)

	callsAfterCancel := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterCancel, spy.calls.Load())

	job.Stop()
}

func TestClientSyncJob_Restart_ReplacesPreviousRun(t *testing.T) {
	spy := &spyHighlights{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(1))
}

func TestClientSyncJob_SyncError_KeepsRunning(t *testing.T) {
	spy := &spyHighlights{err: errors.New("server down")}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3), "errors must not stop the ticker")
}

func TestClientSyncJob_DefaultInterval(t *testing.T) {
	spy := &spyHighlights{}
	job := NewClientSyncJob(spy, logger.Nop())

	// 15 minute default: nothing fires during the test
	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}
