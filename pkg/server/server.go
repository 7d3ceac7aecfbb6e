/*
Copyright 2026 the rest-project Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package server implements an in-process twin of the reqres.in demo API.
// It serves the same fixed dataset and documented error responses so the
// contract suites can run without network access.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
)

// BasePath is where the API is mounted, matching the live service.
const BasePath = "/api"

// Server is the reqres twin.
type Server struct {
	router  *chi.Mux
	logger  logr.Logger
	options Options
	now     func() time.Time
}

// New creates a new twin with its routes mounted.
func New(logger logr.Logger, options Options) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		logger:  logger,
		options: options,
		now:     time.Now,
	}

	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.Recoverer)
	s.router.Use(s.requestLog)
	s.router.Use(s.latency)

	s.router.Route(BasePath, s.routes)

	return s
}

func (s *Server) routes(r chi.Router) {
	r.Get("/users", s.listUsers)
	r.Post("/users", s.createUser)
	r.Get("/users/{id}", s.getUser)
	r.Put("/users/{id}", s.updateUser)
	r.Patch("/users/{id}", s.updateUser)
	r.Delete("/users/{id}", s.deleteUser)

	r.Get("/unknown", s.listResources)
	r.Get("/unknown/{id}", s.getResource)

	r.Post("/register", s.register)
	r.Post("/login", s.login)
	r.Post("/logout", s.logout)
}

// ServeHTTP implements http.Handler so the twin can back an httptest.Server.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves the twin on the configured listen address until the context is
// cancelled, then drains in flight requests.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.options.ListenAddress,
		Handler:           s,
		ReadHeaderTimeout: s.options.ReadHeaderTimeout,
	}

	errs := make(chan error, 1)

	go func() {
		s.logger.Info("listening", "address", s.options.ListenAddress)

		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.options.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// requestLog logs every request once it has been served.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.V(1).Info("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"requestID", chimw.GetReqID(r.Context()),
		)
	})
}

// latency applies the configured base delay plus the per-request ?delay=N
// seconds the live service supports.
func (s *Server) latency(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delay := s.options.Delay

		if value := r.URL.Query().Get("delay"); value != "" {
			if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
				delay += time.Duration(seconds) * time.Second
			}
		}

		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()

			select {
			case <-timer.C:
			case <-r.Context().Done():
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError writes the {"error": "..."} body the live service uses.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
