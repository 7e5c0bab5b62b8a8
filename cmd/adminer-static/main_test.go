// CLASSIFICATION: COMMUNITY
// Filename: main_test.go v0.2
// Author: Lukas Bower
// Date Modified: 2026-10-14
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package main

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"

	"adminerstatic/adminer/health"
	"golang.org/x/time/rate"
)

func TestServeFlagDefaults(t *testing.T) {
	cmd := newServeCmd()
	if err := cmd.ParseFlags([]string{}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		t.Fatalf("port flag: %v", err)
	}
	if port != 8080 {
		t.Fatalf("expected default 8080, got %d", port)
	}
	if bind, _ := cmd.Flags().GetString("bind"); bind != "127.0.0.1" {
		t.Fatalf("expected default bind 127.0.0.1, got %s", bind)
	}
	if confine, _ := cmd.Flags().GetBool("confine"); confine {
		t.Fatalf("confinement should be opt-in")
	}
}

func TestServeOptionsConfig(t *testing.T) {
	opts := serveOptions{bind: "0.0.0.0", port: 9000, logFile: "/log/access.log", rate: 5, burst: 10, confine: true}
	cfg := opts.config()
	if cfg.Bind != "0.0.0.0" || cfg.Port != 9000 || cfg.LogFile != "/log/access.log" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.RequestRate != rate.Limit(5) || cfg.RequestBurst != 10 || !cfg.Confine {
		t.Fatalf("unexpected limits: %+v", cfg)
	}
	if cfg.Assets != nil {
		t.Fatalf("CLI must serve the fixed web root")
	}
}

func TestRootRegistersCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "watch", "healthcheck", "version"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Fatalf("missing %s command: %v", name, err)
		}
	}
}

func TestHealthcheckCommand(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	hs := health.NewServer()
	hs.SetServing(true)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hs.Serve(ctx, l)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"healthcheck", "--addr", l.Addr().String(), "--timeout", "2s"})
	if err := root.Execute(); err != nil {
		t.Fatalf("healthcheck: %v", err)
	}
	if !strings.Contains(out.String(), "SERVING") {
		t.Fatalf("unexpected output %q", out.String())
	}

	hs.SetServing(false)
	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"healthcheck", "--addr", l.Addr().String(), "--timeout", "2s"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected failure when not serving")
	}
}
