// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the application:
// the resty-based HTTP client, JSON response writing for test servers,
// sync run identifiers and file name helpers.
package utils
