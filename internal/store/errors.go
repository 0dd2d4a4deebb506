// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the vault. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrNotAFile is returned when a write targets a path that exists in the
	// vault but is a folder.
	ErrNotAFile = errors.New("path exists and is not a file")

	// ErrNotAFolder is returned when a folder is requested at a path that
	// already holds a file.
	ErrNotAFolder = errors.New("path exists and is not a folder")

	// ErrUnsafePath is returned for paths that would resolve outside the
	// vault root.
	ErrUnsafePath = errors.New("path escapes the vault root")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
