// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
)

var errEmptyAddress = errors.New("empty listen address")

// Server runs the diagnostics HTTP surface until a stop signal arrives.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(handler *Handler, address string, logger *logger.Logger) (*Server, error) {
	if address == "" {
		return nil, errEmptyAddress
	}

	logger.Info().Msg("creating diagnostics server...")

	return &Server{
		httpServer: &http.Server{
			Addr:    address,
			Handler: handler.Init(),
		},
		logger: logger,
	}, nil
}

// Run starts the server and blocks until SIGTERM, SIGINT or SIGQUIT is
// received, then shuts the listener down gracefully.
func (s *Server) Run() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.Addr).Msg("launching diagnostics server")
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("diagnostics server ListenAndServe")
		}
	}()

	<-idleConnectionsClosed
	s.logger.Info().Msg("diagnostics server shut down gracefully")
}

// Shutdown gracefully stops the server and frees associated resources.
func (s *Server) Shutdown() {
	if err := s.httpServer.Shutdown(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("diagnostics server Shutdown")
	}
}
