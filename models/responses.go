// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadURLResponse is returned by GET /clippings/get-upload-url.
// UploadURL is a pointer so that a missing field can be told apart from an
// empty one.
type UploadURLResponse struct {
	UploadURL *string `json:"uploadUrl"`
}

// HighlightsListResponse is returned by GET /clippings/highlights/list.
type HighlightsListResponse struct {
	S3Keys *[]string `json:"s3Keys"`
}

// DownloadURLResponse is returned by GET /clippings/highlights/download.
type DownloadURLResponse struct {
	DownloadURL *string `json:"downloadUrl"`
}

// DailyBundleResponse is returned by GET /clippings/daily-bundle.
type DailyBundleResponse struct {
	Bundles *[]Bundle `json:"bundles"`
}
