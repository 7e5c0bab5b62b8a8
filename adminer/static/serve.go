// CLASSIFICATION: COMMUNITY
// Filename: serve.go v0.3
// Author: Lukas Bower
// Date Modified: 2026-10-14
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package static serves Adminer's bundled assets (stylesheets, scripts and
// images) straight from the web root with a long-lived cache header.
package static

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// WebRoot is the directory every asset is looked up under.
	WebRoot = "/var/www/html/"

	// Prefix is removed from the request path when present.
	Prefix = "/adminer/"

	// CacheControl is sent with every served asset.
	CacheControl = "public, max-age=31536000"
)

// Logger receives read failures. The http package reuses it for the server.
type Logger interface {
	Printf(format string, v ...any)
}

// Option customises a Handler.
type Option func(*Handler)

// WithConfinement rejects any path that resolves outside the web root, in
// either its raw or its percent-decoded form. Without it the raw request
// path is concatenated onto the root as is, so "../" segments can reach
// files elsewhere on disk.
func WithConfinement() Option {
	return func(h *Handler) { h.confine = true }
}

// WithLogger reports read failures to l.
func WithLogger(l Logger) Option {
	return func(h *Handler) { h.log = l }
}

// Handler serves files beneath WebRoot.
type Handler struct {
	root    string
	confine bool
	log     Logger
}

// FileHandler returns an HTTP handler that serves assets from WebRoot.
func FileHandler(opts ...Option) *Handler {
	return newHandler(WebRoot, opts...)
}

func newHandler(root string, opts ...Option) *Handler {
	h := &Handler{root: root}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Resolve maps a raw, still percent-encoded request path to its candidate
// location on disk.
func (h *Handler) Resolve(path string) string {
	return h.root + strings.TrimPrefix(path, Prefix)
}

// requestPath returns the path exactly as it appeared on the request line.
// Escapes are not decoded, so "a%20b.css" names a file called "a%20b.css".
func requestPath(r *http.Request) string {
	uri := r.RequestURI
	if !strings.HasPrefix(uri, "/") {
		return r.URL.EscapedPath()
	}
	if i := strings.IndexAny(uri, "?#"); i >= 0 {
		uri = uri[:i]
	}
	return uri
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := requestPath(r)
	file := h.Resolve(path)
	if h.confine {
		var ok bool
		if file, ok = h.within(file); !ok || !h.decodedWithin(path) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
	}

	fi, err := os.Stat(file)
	if err != nil || !fi.Mode().IsRegular() {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	ct, ok := ContentType(strings.TrimPrefix(filepath.Ext(file), "."))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if h.log != nil {
			h.log.Printf("read %s: %v", file, err)
		}
		w.WriteHeader(http.StatusNotFound)
		return
	}

	hdr := w.Header()
	hdr.Set("Content-Type", ct)
	hdr.Set("Cache-Control", CacheControl)
	hdr.Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// within cleans file and reports whether it stays beneath the root.
func (h *Handler) within(file string) (string, bool) {
	root := filepath.Clean(h.root)
	clean := filepath.Clean(file)
	return clean, strings.HasPrefix(clean, root+string(filepath.Separator))
}

// decodedWithin guards against "%2e%2e/" being decoded by a later hop.
func (h *Handler) decodedWithin(path string) bool {
	dec, err := url.PathUnescape(path)
	if err != nil {
		return false
	}
	_, ok := h.within(h.Resolve(dec))
	return ok
}
