// CLASSIFICATION: COMMUNITY
// Filename: health.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-14
// License: SPDX-License-Identifier: MIT OR Apache-2.0

// Package health exposes the standard gRPC health service for the asset
// server and a probe client for container health checks.
package health

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ErrNotServing is returned by Probe when the server answers but is not SERVING.
var ErrNotServing = errors.New("not serving")

// Server publishes serving state over gRPC.
type Server struct {
	grpc   *grpc.Server
	health *grpchealth.Server
}

// NewServer returns a server reporting NOT_SERVING until SetServing(true).
func NewServer() *Server {
	hs := grpchealth.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	gs := grpc.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	return &Server{grpc: gs, health: hs}
}

// SetServing updates the overall status.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
}

// Serve handles health checks on l until ctx is done.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	go func() {
		<-ctx.Done()
		s.health.Shutdown()
		s.grpc.GracefulStop()
	}()
	if err := s.grpc.Serve(l); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Probe checks the overall status of the server at target.
func Probe(ctx context.Context, target string, timeout time.Duration, opts ...grpc.DialOption) (*healthpb.HealthCheckResponse, error) {
	if strings.TrimSpace(target) == "" {
		return nil, errors.New("health target required")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", target, err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return resp, fmt.Errorf("%s: %w (%s)", target, ErrNotServing, resp.GetStatus())
	}
	return resp, nil
}
