// CLASSIFICATION: COMMUNITY
// Filename: routes.go v0.3
// Author: Lukas Bower
// Date Modified: 2026-10-14
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"net/http"
	"os"

	"adminerstatic/adminer/static"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) initRoutes() {
	r := s.router
	r.Use(middleware.Recoverer)
	if s.cfg.LogFile != "" {
		f, err := os.OpenFile(s.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			s.log.Printf("open log: %v", err)
		} else {
			s.accessLog = f
			r.Use(accessLogger(f, s.log))
		}
	}
	if s.limiter != nil {
		r.Use(rateLimitMiddleware(s.limiter))
	}

	assets := s.cfg.Assets
	if assets == nil {
		opts := []static.Option{static.WithLogger(s.log)}
		if s.cfg.Confine {
			opts = append(opts, static.WithConfinement())
		}
		assets = static.FileHandler(opts...)
	}

	// Every path and method goes to the asset handler; it alone picks 200 or 404.
	r.Handle("/*", assets)
	r.NotFound(http.HandlerFunc(assets.ServeHTTP))
	r.MethodNotAllowed(http.HandlerFunc(assets.ServeHTTP))
}
