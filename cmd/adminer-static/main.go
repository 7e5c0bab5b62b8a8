// CLASSIFICATION: COMMUNITY
// Filename: main.go v0.6
// Author: Lukas Bower
// Date Modified: 2026-10-14
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package main

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"adminerstatic/adminer/health"
	orchestrator "adminerstatic/adminer/http"
	"adminerstatic/adminer/static"
	"adminerstatic/adminer/watch"
	"adminerstatic/internal/tooling"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
	"google.golang.org/protobuf/encoding/protojson"
)

type stdLogger struct{}

func (stdLogger) Printf(format string, v ...any) { log.Printf(format, v...) }

type serveOptions struct {
	bind       string
	port       int
	logFile    string
	rate       float64
	burst      int
	confine    bool
	healthAddr string
	dev        bool
}

func (o serveOptions) config() orchestrator.Config {
	return orchestrator.Config{
		Bind:         o.bind,
		Port:         o.port,
		LogFile:      o.logFile,
		RequestRate:  rate.Limit(o.rate),
		RequestBurst: o.burst,
		Confine:      o.confine,
	}
}

func newServeCmd() *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve Adminer assets from " + static.WebRoot,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.bind, "bind", "127.0.0.1", "bind address")
	f.IntVar(&opts.port, "port", 8080, "listen port")
	f.StringVar(&opts.logFile, "log-file", "", "access log file")
	f.Float64Var(&opts.rate, "rate", 0, "requests per second, 0 for unlimited")
	f.IntVar(&opts.burst, "burst", 1, "request burst allowance")
	f.BoolVar(&opts.confine, "confine", false, "reject paths resolving outside the web root")
	f.StringVar(&opts.healthAddr, "health-addr", "", "gRPC health listen address")
	f.BoolVar(&opts.dev, "dev", false, "enable developer mode")
	return cmd
}

func runServe(cmd *cobra.Command, opts serveOptions) error {
	if opts.dev {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	ctx, cancel := newSignalContext(cmd.Context())
	defer cancel()

	cfg := opts.config()
	if opts.healthAddr != "" {
		l, err := net.Listen("tcp", opts.healthAddr)
		if err != nil {
			return fmt.Errorf("health listen: %w", err)
		}
		hs := health.NewServer()
		cfg.Health = hs
		go func() {
			if err := hs.Serve(ctx, l); err != nil {
				log.Printf("health server: %v", err)
			}
		}()
	}

	srv := orchestrator.New(cfg, stdLogger{})
	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Log changes under " + static.WebRoot,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := watch.New(static.WebRoot, stdLogger{})
			if err != nil {
				return err
			}
			ctx, cancel := newSignalContext(cmd.Context())
			defer cancel()
			return w.Run(ctx)
		},
	}
}

func newHealthcheckCmd() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Probe a running server's gRPC health service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := health.Probe(cmd.Context(), addr, timeout)
			if resp != nil {
				fmt.Fprintln(cmd.OutOrStdout(), protojson.Format(resp))
			}
			return err
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8081", "health service address")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "probe timeout")
	return cmd
}

func newRootCmd() *cobra.Command {
	root := tooling.NewRoot("adminer-static", "Adminer static asset server")
	root.AddCommand(newServeCmd(), newWatchCmd(), newHealthcheckCmd())
	return root
}

func main() {
	tooling.Execute(newRootCmd())
}
