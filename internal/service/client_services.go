// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the sync flows: uploading a clippings export,
// pulling changed highlights and pulling daily bundles, plus the settings
// operations around them. Flows report progress and failures to a
// [Notifier] and return a [models.SyncReport].
package service

import (
	"github.com/MKhiriev/newslog-sync/internal/adapter"
	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/internal/store"
)

type ClientServices struct {
	SettingsService   SettingsService
	UploadService     UploadService
	HighlightsService HighlightsService
	BundleService     BundleService
	SyncJob           SyncJob
}

// NewClientServices wires every service to the same storage, adapter and
// notifier. The flows that touch the checkpoint share one [FlowLock].
func NewClientServices(storages *store.ClientStorages, newslog adapter.NewslogAdapter, notifier Notifier, logger *logger.Logger, opts ...Option) *ClientServices {
	opts = append([]Option{WithFlowLock(NewFlowLock())}, opts...)

	highlights := NewHighlightsService(storages, newslog, notifier, logger, opts...)

	return &ClientServices{
		SettingsService:   NewSettingsService(storages, notifier, logger, opts...),
		UploadService:     NewUploadService(storages, newslog, notifier, logger, opts...),
		HighlightsService: highlights,
		BundleService:     NewBundleService(storages, newslog, notifier, logger, opts...),
		SyncJob:           NewClientSyncJob(highlights, logger),
	}
}
