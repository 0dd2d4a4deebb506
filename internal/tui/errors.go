// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/newslog-sync/internal/service"
	"github.com/MKhiriev/newslog-sync/models"
)

// errorText is the inline message for errors the services do not already
// report through a notice.
func errorText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidFolder):
		return "Folder must stay inside the vault (no \"..\")."
	case errors.Is(err, context.Canceled):
		return "Cancelled."
	}
	return err.Error()
}

// validateDate returns the normalised date or an inline error message.
func validateDate(date string) (string, string) {
	normalised, err := models.ParseBundleDate(date)
	if err != nil {
		return "", "Date must be in YYYY-MM-DD format."
	}
	return normalised, ""
}
