// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncKind names the flow a report or history record belongs to.
type SyncKind string

const (
	SyncKindHighlights SyncKind = "highlights"
	SyncKindBundle     SyncKind = "bundle"
	SyncKindUpload     SyncKind = "upload"
)

// SyncStatus is the terminal state of a flow run.
type SyncStatus string

const (
	// SyncStatusCompleted means the item loop ran; individual items may
	// still have failed.
	SyncStatusCompleted SyncStatus = "completed"

	// SyncStatusEmpty means the server had nothing to transfer.
	SyncStatusEmpty SyncStatus = "empty"

	// SyncStatusFailed means the flow aborted before the item loop.
	SyncStatusFailed SyncStatus = "failed"
)

// SyncReport is the outcome of one flow invocation.
type SyncReport struct {
	Kind SyncKind `json:"kind"`

	// Target is the bundle date or the uploaded file name; empty for the
	// highlights flow.
	Target string `json:"target,omitempty"`

	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`

	// Folder is the vault folder the flow wrote into.
	Folder string `json:"folder,omitempty"`
}

// Success records one processed item.
func (r *SyncReport) Success() {
	r.Total++
	r.Succeeded++
}

// Failure records one item that could not be processed.
func (r *SyncReport) Failure() {
	r.Total++
	r.Failed++
}

// SyncRun is a persisted history record of a flow run.
type SyncRun struct {
	ID         string     `json:"id"`
	Kind       SyncKind   `json:"kind"`
	Target     string     `json:"target"`
	Status     SyncStatus `json:"status"`
	Succeeded  int        `json:"succeeded"`
	Failed     int        `json:"failed"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
}
