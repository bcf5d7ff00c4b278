// Package picker hosts the browser-facing recipient picker.
package picker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/louisbranch/recipients/internal/platform/metrics"
	"github.com/louisbranch/recipients/internal/platform/timeouts"
	"github.com/louisbranch/recipients/internal/recipient"
	"github.com/louisbranch/recipients/internal/services/picker/app"
	module "github.com/louisbranch/recipients/internal/services/picker/module"
	"github.com/louisbranch/recipients/internal/services/picker/modules/recipients"
	"github.com/louisbranch/recipients/internal/services/picker/platform/httpx"
	"github.com/louisbranch/recipients/internal/services/picker/routepath"
	pickerstatic "github.com/louisbranch/recipients/internal/services/picker/static"
	"go.opentelemetry.io/otel/trace"
)

// Config defines startup inputs for the picker service.
type Config struct {
	HTTPAddr string
	Store    *recipient.Store
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	Tracer   trace.Tracer
}

// Server hosts the picker HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *slog.Logger
}

// DefaultModules returns the modules mounted by the picker.
func DefaultModules() []module.Module {
	return []module.Module{recipients.New()}
}

// NewHandler builds the root handler.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("recipient store is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(pickerstatic.FS))))
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	if cfg.Metrics != nil {
		rootMux.Handle(http.MethodGet+" "+routepath.Metrics, cfg.Metrics.Handler())
	}
	if err := app.Compose(rootMux, app.ComposeInput{
		Dependencies: module.Dependencies{
			Store:  cfg.Store,
			Logger: logger,
			Tracer: cfg.Tracer,
		},
		Modules: DefaultModules(),
	}); err != nil {
		return nil, err
	}
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		httpx.RequestLogger(logger),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// NewServer validates config and constructs a picker server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose picker handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("picker server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()
	s.logger.Info("picker listening", "addr", s.httpAddr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown picker http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve picker http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
