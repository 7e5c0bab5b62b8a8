// CLASSIFICATION: COMMUNITY
// Filename: middleware.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-10-14
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// accessLogger appends one line per request to out. The first write failure
// is reported through log; later ones are dropped.
func accessLogger(out io.Writer, log Logger) func(http.Handler) http.Handler {
	var (
		mu   sync.Mutex
		once sync.Once
	)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			rec := fmt.Sprintf("%s %s %s %d\n", r.RemoteAddr, r.Method, r.URL.Path, ww.Status())
			mu.Lock()
			_, err := io.WriteString(out, rec)
			mu.Unlock()
			if err != nil {
				once.Do(func() { log.Printf("write access log: %v", err) })
			}
		})
	}
}

func rateLimitMiddleware(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
