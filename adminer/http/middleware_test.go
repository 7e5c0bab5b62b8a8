// CLASSIFICATION: COMMUNITY
// Filename: middleware_test.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-14
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

type recordingLogger struct{ lines []string }

func (l *recordingLogger) Printf(format string, v ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

var teapot = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusTeapot)
})

func TestAccessLoggerFormat(t *testing.T) {
	var out bytes.Buffer
	h := accessLogger(&out, &recordingLogger{})(teapot)
	req := httptest.NewRequest(http.MethodHead, "/adminer/app.css", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got := out.String(); got != "10.0.0.1:1234 HEAD /adminer/app.css 418\n" {
		t.Fatalf("unexpected log line %q", got)
	}
}

func TestAccessLoggerReportsWriteFailureOnce(t *testing.T) {
	log := &recordingLogger{}
	h := accessLogger(failingWriter{}, log)(teapot)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/adminer/app.css", nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("logging failure must not change the response, got %d", rec.Code)
		}
	}
	if len(log.lines) != 1 || !strings.Contains(log.lines[0], "disk full") {
		t.Fatalf("expected a single write failure report, got %v", log.lines)
	}
}
