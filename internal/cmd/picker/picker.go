// Package picker parses picker command configuration and runs the service.
package picker

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	entrypoint "github.com/louisbranch/recipients/internal/platform/cmd"
	"github.com/louisbranch/recipients/internal/platform/config"
	"github.com/louisbranch/recipients/internal/platform/metrics"
	"github.com/louisbranch/recipients/internal/platform/otel"
	"github.com/louisbranch/recipients/internal/recipient"
	pickerservice "github.com/louisbranch/recipients/internal/services/picker"
)

// Config holds the picker command configuration.
type Config struct {
	HTTPAddr       string `env:"RECIPIENTS_PICKER_HTTP_ADDR" envDefault:"localhost:8095" validate:"required,hostname_port"`
	LogLevel       string `env:"RECIPIENTS_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	DisableMetrics bool   `env:"RECIPIENTS_PICKER_DISABLE_METRICS"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.DisableMetrics, "disable-metrics", cfg.DisableMetrics, "Do not expose /metrics")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := config.Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the picker server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	logger := entrypoint.NewLogger(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServicePicker, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := NewServer(cfg, logger)
		if err != nil {
			return err
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve picker: %w", err)
		}
		logger.Info("picker stopped")
		return nil
	})
}

// NewServer builds the seeded store and the picker server around it.
func NewServer(cfg Config, logger *slog.Logger) (*pickerservice.Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts := []recipient.Option{recipient.WithObserver(logObserver(logger))}
	var m *metrics.Metrics
	if !cfg.DisableMetrics {
		m = metrics.New()
		opts = append(opts, recipient.WithObserver(m.Observe))
	}
	store := recipient.NewSeededStore(opts...)
	m.SetSnapshot(store.Snapshot())

	server, err := pickerservice.NewServer(pickerservice.Config{
		HTTPAddr: cfg.HTTPAddr,
		Store:    store,
		Metrics:  m,
		Logger:   logger,
		Tracer:   otel.Tracer(""),
	})
	if err != nil {
		return nil, fmt.Errorf("init picker server: %w", err)
	}
	return server, nil
}

func logObserver(logger *slog.Logger) recipient.Observer {
	return func(op recipient.Operation, next recipient.Snapshot) {
		logger.Debug("recipients updated",
			"op", string(op),
			"selected", next.SelectedCount(),
			"search_length", len(next.SearchText()),
		)
	}
}
