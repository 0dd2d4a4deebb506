// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the newslog-sync client.
//
// Configuration is assembled from several sources. A field set by a
// higher-priority source is never overwritten by a lower one:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path taken from -c/-config or CONFIG)
//  4. Built-in defaults (production server origin, XDG data directory)
//
// The entry point is [GetClientConfig].
package config
