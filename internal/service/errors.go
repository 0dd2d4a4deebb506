// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrIdentityNotConfigured = errors.New("username or API key not configured")
	ErrNoFileProvided        = errors.New("no file provided")

	// ErrInvalidKey is returned for storage keys that cannot be mapped to a
	// vault path: fewer than four segments, or an empty, "." or ".." segment
	// where the grouping or file name is taken from.
	ErrInvalidKey = errors.New("invalid storage key")

	// ErrInvalidName is returned for bundle folder or file names that are
	// not a safe vault path segment.
	ErrInvalidName = errors.New("invalid bundle name")

	// ErrNoContent is returned for a bundle file that has neither a URL nor
	// inline content.
	ErrNoContent = errors.New("bundle file has no url and no content")

	ErrInvalidFolder = errors.New("invalid vault folder")
)
