// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/noldarim/portfolio/internal/config"
	"github.com/noldarim/portfolio/internal/contact"
	"github.com/noldarim/portfolio/internal/content"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Deps are the collaborators the server needs.
type Deps struct {
	Store  *content.Store
	Sender contact.Sender
	// Messages enables the admin listing when an admin token is also set.
	Messages MessageLister
	// ContentVersions receives store versions after each reload. Optional.
	ContentVersions <-chan int
}

// Server is the page, REST and WebSocket server.
type Server struct {
	httpServer  *http.Server
	sessions    *SessionRegistry
	broadcaster *ContentBroadcaster
}

// New creates and wires up the server. It does NOT start listening; call
// Run() for that.
func New(cfg *config.ServerConfig, deps Deps) (*Server, error) {
	if deps.Store == nil || deps.Sender == nil {
		return nil, errors.New("server requires a content store and a sender")
	}

	tmplDir := ""
	if cfg.DevMode {
		tmplDir = cfg.TemplatesDir
	}
	renderer, err := NewRenderer(tmplDir)
	if err != nil {
		return nil, err
	}

	sessions := NewSessionRegistry()
	handlers := NewHandlers(deps.Store, deps.Sender, renderer, deps.Messages)

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(CORS(cfg.AllowedOrigins))
	r.Use(MaxBodySize(maxBody))

	r.Get("/", handlers.Index)
	r.Get("/healthz", handlers.Health)
	r.Handle("/assets/*", assetsHandler())

	// REST routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/content", handlers.GetContent)
		r.Post("/contact", handlers.SubmitContact)

		if deps.Messages != nil && cfg.AdminToken != "" {
			r.With(RequireBearer(cfg.AdminToken)).Get("/messages", handlers.ListMessages)
		}
	})

	// WebSocket
	r.Get("/ws", HandleWebSocket(sessions, deps.Sender, deps.Store, cfg.AllowedOrigins))

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           otelhttp.NewHandler(r, "portfolio"),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			IdleTimeout:       60 * time.Second,
			// No WriteTimeout: a contact submission waits on the email
			// provider for as long as it takes.
		},
		sessions:    sessions,
		broadcaster: NewContentBroadcaster(deps.ContentVersions, sessions),
	}, nil
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Sessions returns the live session registry.
func (s *Server) Sessions() *SessionRegistry {
	return s.sessions
}

// Run starts the content broadcaster and the HTTP server. Blocks until the
// server is shut down.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				getLog().Error().Interface("panic", r).Msg("Content broadcaster panic")
			}
		}()
		s.broadcaster.Run(ctx)
	}()

	getLog().Info().Str("addr", ln.Addr().String()).Msg("Portfolio server listening")
	err := s.httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server and closes live sessions, which
// http.Server does not track once hijacked.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.sessions.CloseAll()
	return err
}
