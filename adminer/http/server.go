// CLASSIFICATION: COMMUNITY
// Filename: server.go v0.3
// Author: Lukas Bower
// Date Modified: 2026-10-14
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// Config holds server configuration.
type Config struct {
	Bind    string
	Port    int
	LogFile string

	// RequestRate caps requests per second; zero disables limiting.
	RequestRate  rate.Limit
	RequestBurst int

	// Confine rejects paths that resolve outside the web root.
	Confine bool

	// Health, when set, is told when the listener comes up and goes down.
	Health HealthReporter

	// Assets replaces the web root handler. Nil serves static.WebRoot.
	Assets http.Handler
}

// Server wraps the HTTP server and router.
type Server struct {
	cfg     Config
	log     Logger
	router  *chi.Mux
	limiter *rate.Limiter

	accessLog *os.File
	closeOnce sync.Once
	closeErr  error
}

type stdLogger struct{}

func (stdLogger) Printf(format string, v ...any) { log.Printf(format, v...) }

// New returns an initialized server. A nil logger falls back to the log package.
func New(cfg Config, l Logger) *Server {
	if l == nil {
		l = stdLogger{}
	}
	s := &Server{cfg: cfg, log: l, router: chi.NewRouter()}
	if cfg.RequestRate > 0 {
		burst := cfg.RequestBurst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(cfg.RequestRate, burst)
	}
	s.initRoutes()
	return s
}

// Router returns the underlying router, useful for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Addr returns the listening address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Bind, fmt.Sprint(s.cfg.Port))
}

// Close releases the access log, if one was opened. Serve calls it on shutdown.
func (s *Server) Close() error {
	s.closeOnce.Do(func() {
		if s.accessLog != nil {
			s.closeErr = s.accessLog.Close()
		}
	})
	return s.closeErr
}

// Start begins serving until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	l, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Addr(), err)
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is done.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{Handler: s.router, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		if s.cfg.Health != nil {
			s.cfg.Health.SetServing(false)
		}
		ctxTo, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctxTo)
		s.Close()
	}()
	if s.cfg.Health != nil {
		s.cfg.Health.SetServing(true)
	}
	s.log.Printf("adminer static assets listening on %s", l.Addr())
	return srv.Serve(l)
}
