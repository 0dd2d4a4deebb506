// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const (
	folderPerm = 0o755
	filePerm   = 0o644
)

// fileVault is the [Vault] implementation on top of a go-billy filesystem:
// osfs bound to the vault directory in production, memfs in tests.
type fileVault struct {
	fs   billy.Filesystem
	root string

	logger *logger.Logger
}

// NewFileVault opens the vault rooted at dir, creating dir when missing.
// Every path is resolved inside dir; symlinks cannot lead outside of it.
func NewFileVault(dir string, logger *logger.Logger) (Vault, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve vault root %q: %w", dir, err)
	}
	if err = os.MkdirAll(abs, folderPerm); err != nil {
		return nil, fmt.Errorf("create vault root %q: %w", abs, err)
	}

	logger.Debug().Str("root", abs).Msg("vault opened")
	return &fileVault{fs: osfs.New(abs, osfs.WithBoundOS()), root: abs, logger: logger}, nil
}

// NewMemoryVault returns an empty in-memory vault.
func NewMemoryVault(logger *logger.Logger) Vault {
	return &fileVault{fs: memfs.New(), root: "memory://", logger: logger}
}

func (v *fileVault) Root() string {
	return v.root
}

func (v *fileVault) Stat(p string) (NodeKind, error) {
	clean, err := cleanPath(p)
	if err != nil {
		return NodeAbsent, err
	}
	if clean == "" {
		return NodeFolder, nil
	}

	info, err := v.fs.Stat(clean)
	switch {
	case err == nil && info.IsDir():
		return NodeFolder, nil
	case err == nil:
		return NodeFile, nil
	case errors.Is(err, os.ErrNotExist):
		return NodeAbsent, nil
	default:
		return NodeAbsent, fmt.Errorf("stat %q: %w", clean, err)
	}
}

func (v *fileVault) CreateFolder(p string) error {
	clean, err := cleanPath(p)
	if err != nil {
		return err
	}
	if clean == "" {
		return nil
	}

	kind, err := v.Stat(clean)
	if err != nil {
		return err
	}
	switch kind {
	case NodeFolder:
		return nil
	case NodeFile:
		return fmt.Errorf("create folder %q: %w", clean, ErrNotAFolder)
	}

	if err = v.fs.MkdirAll(clean, folderPerm); err != nil {
		return fmt.Errorf("create folder %q: %w", clean, err)
	}

	v.logger.Debug().Str("path", clean).Msg("folder created")
	return nil
}

func (v *fileVault) CreateFile(p string, content []byte) error {
	clean, err := cleanPath(p)
	if err != nil {
		return err
	}

	kind, err := v.Stat(clean)
	if err != nil {
		return err
	}
	if kind != NodeAbsent {
		return fmt.Errorf("create file %q: %w", clean, os.ErrExist)
	}

	return v.write(clean, content)
}

func (v *fileVault) Overwrite(p string, content []byte) error {
	clean, err := cleanPath(p)
	if err != nil {
		return err
	}

	kind, err := v.Stat(clean)
	if err != nil {
		return err
	}
	switch kind {
	case NodeFolder:
		return fmt.Errorf("overwrite %q: %w", clean, ErrNotAFile)
	case NodeAbsent:
		return fmt.Errorf("overwrite %q: %w", clean, os.ErrNotExist)
	}

	return v.write(clean, content)
}

func (v *fileVault) write(clean string, content []byte) error {
	if err := util.WriteFile(v.fs, clean, content, filePerm); err != nil {
		return fmt.Errorf("write %q: %w", clean, err)
	}

	v.logger.Debug().Str("path", clean).Int("bytes", len(content)).Msg("file written")
	return nil
}

// cleanPath normalises a vault-relative path. The root itself is "".
// Parent references are rejected rather than resolved.
func cleanPath(p string) (string, error) {
	p = strings.ReplaceAll(p, "\\", "/")
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%q: %w", p, ErrUnsafePath)
		}
	}

	return strings.TrimPrefix(path.Clean("/"+p), "/"), nil
}
