// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo carries build-time metadata injected with -ldflags and shown
// by the TUI "about" page and at process start.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]; empty values are reported as N/A.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

// Version returns the release version of the build.
func (a AppBuildInfo) Version() string { return orNA(a.version) }

// Date returns the build timestamp.
func (a AppBuildInfo) Date() string { return orNA(a.date) }

// Commit returns the source-control commit of the build.
func (a AppBuildInfo) Commit() string { return orNA(a.commit) }

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
