// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It applies the configuration overrides to the stored settings and then
// runs the requested action: the terminal UI, one of the sync flows, a
// settings operation or the periodic highlights sync.
package client
