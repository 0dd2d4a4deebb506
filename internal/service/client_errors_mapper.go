// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/newslog-sync/internal/adapter"
	"github.com/MKhiriev/newslog-sync/internal/store"
)

// describeError turns an error from the adapter or the store into the text
// shown to the user after action, e.g. "Failed to get upload URL".
func describeError(action string, err error) string {
	if err == nil {
		return action + "."
	}

	switch {
	case errors.Is(err, ErrIdentityNotConfigured), errors.Is(err, adapter.ErrMissingIdentity):
		return "Username or API Key not configured in plugin settings."

	case errors.Is(err, context.Canceled):
		return action + ": cancelled."

	case errors.Is(err, context.DeadlineExceeded):
		return action + ": timed out."

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		code, _ := adapter.StatusCode(err)
		return fmt.Sprintf("%s: the server rejected the credentials (HTTP %d). Check username and API key.", action, code)

	case errors.Is(err, adapter.ErrNotFound):
		return action + ": not found on the server (HTTP 404)."

	case errors.Is(err, adapter.ErrUnexpectedStatus):
		code, _ := adapter.StatusCode(err)
		return fmt.Sprintf("%s: server returned HTTP %d.", action, code)

	case errors.Is(err, adapter.ErrNetwork):
		return action + ": network error. Check your connection."

	case errors.Is(err, adapter.ErrMalformedResponse):
		return action + ": unexpected response from the server."

	case errors.Is(err, adapter.ErrInvalidDate):
		return action + ": date must be in YYYY-MM-DD format."

	case errors.Is(err, store.ErrNotAFile):
		return action + ": a folder is in the way of the file."
	}

	return fmt.Sprintf("%s: %v", action, err)
}
