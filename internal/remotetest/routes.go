// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remotetest

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Paths served by [Server].
const (
	PathUploadURL     = "/clippings/get-upload-url"
	PathHighlights    = "/clippings/highlights/list"
	PathDownloadURL   = "/clippings/highlights/download"
	PathDailyBundle   = "/clippings/daily-bundle"
	PathPresignedPut  = "/presigned/upload"
	PathPresignedGet  = "/presigned/highlight"
	PathPresignedFile = "/presigned/bundle"
)

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.record, s.override)

	// identity-checked routes
	router.Group(func(r chi.Router) {
		r.Use(s.auth)
		r.Get(PathUploadURL, s.uploadURL)
		r.Get(PathHighlights, s.listHighlights)
		r.Get(PathDownloadURL, s.downloadURL)
		r.Get(PathDailyBundle, s.dailyBundle)
	})

	// presigned routes carry no identity
	router.Group(func(r chi.Router) {
		r.Put(PathPresignedPut, s.presignedPut)
		r.Get(PathPresignedGet, s.presignedHighlight)
		r.Get(PathPresignedFile, s.presignedBundleFile)
	})

	return router
}
