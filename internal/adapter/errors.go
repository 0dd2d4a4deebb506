// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Precondition errors. They are returned before any request is sent.
var (
	ErrMissingIdentity = errors.New("username or API key not configured")
	ErrEmptyFileName   = errors.New("file name is empty")
	ErrEmptyKey        = errors.New("storage key is empty")
	ErrInvalidDate     = errors.New("invalid bundle date")
	ErrEmptyURL        = errors.New("transfer url is empty")
)

// Remote errors.
var (
	// ErrUnexpectedStatus matches every non-200 response.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNetwork wraps transport failures: the request did not complete.
	ErrNetwork = errors.New("network error")

	// ErrMalformedResponse is returned when a 200 response lacks the expected
	// field or cannot be decoded.
	ErrMalformedResponse = errors.New("malformed server response")
)
