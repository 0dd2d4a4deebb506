// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remotetest

import (
	"io"
	"net/http"
	"net/url"
	"slices"

	"github.com/MKhiriev/newslog-sync/internal/utils"
	"github.com/MKhiriev/newslog-sync/models"
)

func (s *Server) presigned(path string, query url.Values) string {
	return s.URL + path + "?" + query.Encode()
}

func (s *Server) uploadURL(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("fileName")
	if name == "" {
		http.Error(w, "fileName is required", http.StatusBadRequest)
		return
	}

	u := s.presigned(PathPresignedPut, url.Values{"name": {name}, "X-Amz-Signature": {"sig"}})
	_, _ = utils.WriteJSON(w, map[string]string{"uploadUrl": u}, http.StatusOK)
}

func (s *Server) presignedPut(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.uploads[r.URL.Query().Get("name")] = Upload{ContentType: r.Header.Get("Content-Type"), Body: body}
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (s *Server) listHighlights(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	keys := slices.Clone(s.keyOrder)
	s.mu.Unlock()

	if keys == nil {
		keys = []string{}
	}
	_, _ = utils.WriteJSON(w, map[string][]string{"s3Keys": keys}, http.StatusOK)
}

func (s *Server) downloadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("s3Key")

	s.mu.Lock()
	_, ok := s.highlights[key]
	s.mu.Unlock()

	if !ok {
		http.Error(w, "no such key", http.StatusNotFound)
		return
	}

	u := s.presigned(PathPresignedGet, url.Values{"key": {key}})
	_, _ = utils.WriteJSON(w, map[string]string{"downloadUrl": u}, http.StatusOK)
}

func (s *Server) presignedHighlight(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	content, ok := s.highlights[r.URL.Query().Get("key")]
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/markdown")
	_, _ = w.Write([]byte(content))
}

func (s *Server) dailyBundle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	s.mu.Lock()
	stored := s.bundles[date]
	s.mu.Unlock()

	bundles := make([]models.Bundle, 0, len(stored))
	for _, b := range stored {
		out := models.Bundle{FolderName: b.FolderName}
		for _, f := range b.Files {
			listed := models.BundleFile{Filename: f.Filename}
			if b.inline {
				listed.Content = f.Content
			} else {
				listed.URL = s.presigned(PathPresignedFile, url.Values{
					"date": {date}, "folder": {b.FolderName}, "file": {f.Filename},
				})
			}
			out.Files = append(out.Files, listed)
		}
		bundles = append(bundles, out)
	}

	_, _ = utils.WriteJSON(w, map[string][]models.Bundle{"bundles": bundles}, http.StatusOK)
}

func (s *Server) presignedBundleFile(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bundles[q.Get("date")] {
		if b.FolderName != q.Get("folder") {
			continue
		}
		for _, f := range b.Files {
			if f.Filename == q.Get("file") {
				_, _ = w.Write([]byte(f.Content))
				return
			}
		}
	}

	w.WriteHeader(http.StatusNotFound)
}
