// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Bundle is a named group of files the server assembled for one date.
// Each file already carries its own presigned download URL.
type Bundle struct {
	// FolderName is the vault subfolder all files of the bundle are put in.
	FolderName string       `json:"bundle_folder_name"`
	Files      []BundleFile `json:"files"`
}

// BundleFile is a single downloadable file of a [Bundle].
type BundleFile struct {
	Filename string `json:"filename"`

	// URL is a short-lived presigned URL; it is used once and never stored.
	URL string `json:"url"`

	// Content is an optional inline copy of the file body. The server may
	// leave it empty.
	Content string `json:"content"`
}

// FileCount returns the total number of files across bundles.
func FileCount(bundles []Bundle) int {
	n := 0
	for _, b := range bundles {
		n += len(b.Files)
	}
	return n
}
