// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ClippingsFileName is the name of the export file Kindle devices produce.
const ClippingsFileName = "My Clippings.txt"

const fallbackContentType = "application/octet-stream"

// IsClippingsFile reports whether name looks like a Kindle clippings export.
// The comparison ignores case.
func IsClippingsFile(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), ClippingsFileName)
}

// DetectContentType sniffs the MIME type of data. Empty input yields
// application/octet-stream.
func DetectContentType(data []byte) string {
	if len(data) == 0 {
		return fallbackContentType
	}

	mt := mimetype.Detect(data)
	if mt == nil || mt.String() == "" {
		return fallbackContentType
	}

	return mt.String()
}
