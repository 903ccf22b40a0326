package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/tinyurl/internal/config"
	"github.com/vadimbarashkov/tinyurl/internal/registry"
	"github.com/vadimbarashkov/tinyurl/internal/usecase"
	"golang.org/x/sync/errgroup"

	delivery "github.com/vadimbarashkov/tinyurl/internal/adapter/delivery/http"
)

const serviceName = "tinyurl"

// NewLogger creates the application logger described by cfg.
func NewLogger(cfg *config.Config) *httplog.Logger {
	return httplog.NewLogger(serviceName, httplog.Options{
		LogLevel: cfg.Log.SlogLevel(),
		JSON:     cfg.Log.JSON,
		Concise:  cfg.Log.Concise,
		Tags: map[string]string{
			"env": cfg.Env,
		},
	})
}

// NewHandler builds the HTTP handler with a fresh, empty registry behind it.
func NewHandler(cfg *config.Config, logger *httplog.Logger) http.Handler {
	urlUseCase := usecase.New(registry.New())

	var opts []delivery.Option
	if cfg.Dashboard.CSRFKey != "" {
		opts = append(opts, delivery.WithCSRF([]byte(cfg.Dashboard.CSRFKey), cfg.Dashboard.CSRFSecure))
	}

	return delivery.NewRouter(logger, urlUseCase, opts...)
}

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := NewLogger(cfg)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        NewHandler(cfg, logger),
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", slog.String("addr", server.Addr), slog.String("env", cfg.Env))

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		logger.Info("server stopped")

		return nil
	})

	return g.Wait()
}
