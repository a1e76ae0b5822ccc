// Package site hosts the Bauc Mind marketing site and studio prototype.
package site

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/baucmind/site/internal/lead"
	"github.com/baucmind/site/internal/platform/timeouts"
	siteapp "github.com/baucmind/site/internal/services/site/app"
	module "github.com/baucmind/site/internal/services/site/module"
	"github.com/baucmind/site/internal/services/site/modules"
	"github.com/baucmind/site/internal/services/site/platform/httpx"
	"github.com/baucmind/site/internal/services/site/platform/observability"
	"github.com/baucmind/site/internal/services/site/routepath"
	sitestatic "github.com/baucmind/site/internal/services/site/static"
	"go.opentelemetry.io/otel"
)

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr      string
	SchedulingURL string
	DevMode       bool
	// Leads receives demo requests. Nil makes every submission fail with a
	// retryable error.
	Leads          lead.Submitter
	CheckTimeScale float64
	// LeadSubmitTimeout overrides the default delivery bound.
	LeadSubmitTimeout time.Duration
	Logger            *log.Logger
}

// Server hosts the site HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default modules.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	deps := module.Dependencies{
		Leads:             cfg.Leads,
		SchedulingURL:     strings.TrimSpace(cfg.SchedulingURL),
		DevMode:           cfg.DevMode,
		CheckTimeScale:    cfg.CheckTimeScale,
		LeadSubmitTimeout: cfg.LeadSubmitTimeout,
		Logger:            logger,
	}
	h, err := siteapp.BuildRootHandler(siteapp.Config{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(sitestatic.FS))))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Tracing(otel.GetTracerProvider()),
		observability.RequestLogger(logger),
	), nil
}

// NewServer validates config and constructs a site server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose site handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("site listening on %s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
