// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remotetest

import (
	"net/http"

	"github.com/MKhiriev/newslog-sync/internal/utils"
)

const (
	headerUserID     = "x-user-id"
	headerUserSecret = "x-user-secret"
)

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) override(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		o, ok := s.overrides[r.URL.Path]
		s.mu.Unlock()

		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		w.WriteHeader(o.status)
		_, _ = w.Write([]byte(o.body))
	})
}

// auth rejects requests whose identity headers do not match the server's.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(headerUserID) != s.identity.Username ||
			r.Header.Get(headerUserSecret) != s.identity.APIKey {
			_, _ = utils.WriteJSON(w, map[string]string{"message": "Unauthorized"}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
