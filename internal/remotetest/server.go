// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package remotetest runs an in-process imitation of the Newslog service for
// tests. It serves the four identity-checked endpoints under /clippings and
// the presigned transfer URLs they hand out, keeps what clients upload and
// records every request so tests can assert on headers and query parameters.
package remotetest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"sync"

	"github.com/MKhiriev/newslog-sync/models"
)

// Request is a recorded incoming request.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
}

// Upload is a body received on a presigned upload URL.
type Upload struct {
	ContentType string
	Body        []byte
}

// Server is a fake Newslog origin backed by [httptest.Server].
type Server struct {
	*httptest.Server

	mu sync.Mutex

	identity models.Identity

	highlights map[string]string
	keyOrder   []string
	bundles    map[string][]storedBundle
	uploads    map[string]Upload

	overrides map[string]override
	requests  []Request
}

type storedBundle struct {
	models.Bundle
	inline bool
}

type override struct {
	status int
	body   string
}

// New starts a fake server that accepts identity.
func New(identity models.Identity) *Server {
	s := &Server{
		identity:   identity,
		highlights: make(map[string]string),
		bundles:    make(map[string][]storedBundle),
		uploads:    make(map[string]Upload),
		overrides:  make(map[string]override),
	}
	s.Server = httptest.NewServer(s.routes())
	return s
}

// AddHighlight makes key listable and downloadable with content.
func (s *Server) AddHighlight(key, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.highlights[key]; !ok {
		s.keyOrder = append(s.keyOrder, key)
	}
	s.highlights[key] = content
}

// AddBundle registers a bundle for date. Each file's Content is served from
// a presigned URL of this server; the listing carries only the URL.
func (s *Server) AddBundle(date string, bundle models.Bundle) {
	s.addBundle(date, bundle, false)
}

// AddInlineBundle registers a bundle whose files are listed with their
// content inline and no URL.
func (s *Server) AddInlineBundle(date string, bundle models.Bundle) {
	s.addBundle(date, bundle, true)
}

func (s *Server) addBundle(date string, bundle models.Bundle, inline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bundles[date] = append(s.bundles[date], storedBundle{Bundle: bundle, inline: inline})
}

// Respond makes every request to path return status and body instead of the
// regular handler. It applies to presigned paths as well.
func (s *Server) Respond(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overrides[path] = override{status: status, body: body}
}

// Uploaded returns what was PUT for name.
func (s *Server) Uploaded(name string) (Upload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.uploads[name]
	return u, ok
}

// Requests returns a copy of the recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.requests)
}

// RequestsTo returns the recorded requests for path.
func (s *Server) RequestsTo(path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}
