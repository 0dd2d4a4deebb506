// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/newslog-sync/models"
)

// validate checks the merged [StructuredConfig]. Field-level requirements are
// checked on the [ClientConfig] view.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" || strings.TrimSpace(cfg.Storage.VaultRoot) == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Command.Action {
	case ActionTUI, ActionHighlights, ActionSettings, ActionResetHighlights, ActionResetBundles, ActionHistory:
	case ActionUpload:
		if strings.TrimSpace(cfg.Command.File) == "" {
			return fmt.Errorf("%w: -file is required for %s", ErrInvalidCommand, ActionUpload)
		}
	case ActionWatch:
		if cfg.Command.Interval < 0 {
			return fmt.Errorf("%w: -interval must not be negative", ErrInvalidCommand)
		}
	case ActionBundle:
		if _, err := models.ParseBundleDate(cfg.Command.Date); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCommand, err)
		}
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidCommand, cfg.Command.Action)
	}

	return nil
}
