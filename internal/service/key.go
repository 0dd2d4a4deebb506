// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/newslog-sync/internal/store"
)

const minKeySegments = 4

// parseKey maps a storage key such as "user/highlights/Dune/ch1.md" to the
// grouping folder and file name the note is saved under. Only the last two
// segments are used.
func parseKey(key string) (grouping, filename string, err error) {
	parts := strings.Split(key, "/")
	if len(parts) < minKeySegments {
		return "", "", fmt.Errorf("%w: %q has %d segments, want at least %d", ErrInvalidKey, key, len(parts), minKeySegments)
	}

	grouping, filename = parts[len(parts)-2], parts[len(parts)-1]
	if !safeSegment(grouping) || !safeSegment(filename) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return grouping, filename, nil
}

// safeSegment reports whether s can be used as a single path element.
func safeSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}

// writeNote stores content at p: an existing file is overwritten, an absent
// one is created and anything else is a conflict.
func writeNote(vault store.Vault, p string, content []byte) error {
	kind, err := vault.Stat(p)
	if err != nil {
		return err
	}

	switch kind {
	case store.NodeFile:
		return vault.Overwrite(p, content)
	case store.NodeFolder:
		return fmt.Errorf("write %q: %w", p, store.ErrNotAFile)
	default:
		return vault.CreateFile(p, content)
	}
}

// vaultPath joins vault path elements; an empty root means the vault root.
func vaultPath(elem ...string) string {
	return strings.TrimPrefix(path.Join(elem...), "/")
}

// cleanFolder normalises a folder setting to a vault-relative path.
func cleanFolder(folder string) (string, error) {
	folder = strings.ReplaceAll(strings.TrimSpace(folder), `\`, "/")
	for _, seg := range strings.Split(folder, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidFolder, folder)
		}
	}

	clean := strings.Trim(path.Clean("/"+folder), "/")
	return clean, nil
}
