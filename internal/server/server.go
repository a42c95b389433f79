// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/config"
	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
)

// DefaultShutdownTimeout bounds the graceful shutdown of open connections.
const DefaultShutdownTimeout = 5 * time.Second

type server struct {
	httpServer *httpServer
	address    string

	mu   sync.Mutex
	addr net.Addr

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer returns the coordinator server serving router on
// cfg.Address.
func NewServer(router http.Handler, cfg config.Coordinator, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if router == nil || cfg.Address == "" {
		return nil, ErrNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(router, cfg.Address, logger),
		address:         cfg.Address,
		shutdownTimeout: DefaultShutdownTimeout,
		logger:          logger,
	}, nil
}

// Run listens on the coordinator address and serves until ctx is cancelled,
// then shuts the server down gracefully.
func (s *server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.address, err)
	}

	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("func", "server.Run").Str("address", ln.Addr().String()).Msg("Launching HTTP server")
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err = s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err = <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Str("func", "server.Run").Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the bound listener address, or nil before Run has started
// listening.
func (s *server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}
