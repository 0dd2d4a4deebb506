// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidAdapterConfigs indicates a missing server address or
	// non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing state DSN or vault root.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCommand indicates an unknown action or an action missing its
	// argument (-file for upload, -date for bundle).
	ErrInvalidCommand = errors.New("invalid command")
)
