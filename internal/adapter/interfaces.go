// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the Newslog remote
// service.
//
// The primary abstraction is [NewslogAdapter]. Calls to the fixed origin carry
// the x-user-id and x-user-secret headers; transfers to presigned URLs carry
// no credentials. Calls missing a precondition (identity, file name, key,
// date, URL) fail before any network I/O.
//
// Errors are returned, never raised: status failures are [*StatusError]
// values matching [ErrUnexpectedStatus] and a per-status sentinel, transport
// failures wrap [ErrNetwork] and responses without the expected field wrap
// [ErrMalformedResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/newslog-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/newslog_adapter_mock.go -package=mock

// NewslogAdapter defines communication with the Newslog service and with the
// short-lived presigned URLs it hands out.
type NewslogAdapter interface {
	// RequestUploadURL asks the server for a presigned destination for
	// filename (GET /clippings/get-upload-url).
	RequestUploadURL(ctx context.Context, identity models.Identity, filename string) (string, error)

	// PutContent uploads body to a presigned URL with the given content type.
	// Any status other than 200 is a failure.
	PutContent(ctx context.Context, url string, body []byte, contentType string) error

	// ListChangedItemKeys returns the storage keys of highlights changed since
	// the given checkpoint (GET /clippings/highlights/list). An empty since
	// requests the full set.
	ListChangedItemKeys(ctx context.Context, identity models.Identity, since string) ([]string, error)

	// RequestDownloadURL asks the server for a presigned source URL for one
	// item (GET /clippings/highlights/download).
	RequestDownloadURL(ctx context.Context, identity models.Identity, key string) (string, error)

	// GetContent fetches the body behind a presigned URL as text.
	GetContent(ctx context.Context, url string) (string, error)

	// ListDailyBundles returns the bundles for a YYYY-MM-DD date
	// (GET /clippings/daily-bundle). Each file already carries its own
	// download URL.
	ListDailyBundles(ctx context.Context, identity models.Identity, date string) ([]models.Bundle, error)
}
