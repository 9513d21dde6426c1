package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"misakif.uk/internal/catalog"
	"misakif.uk/internal/config"
	"misakif.uk/internal/handlers"
	"misakif.uk/internal/logging"
	"misakif.uk/internal/services"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the portfolio HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", cfg.ServerAddr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", cfg.ServerAddr, err)
			}
			return serve(ctx, ln, cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "config file (optional)")
	return cmd
}

// serve runs the HTTP server on ln until ctx is done, then shuts down
// within cfg.ShutdownTimeout.
func serve(ctx context.Context, ln net.Listener, cfg *config.Config, logger *zap.Logger) error {
	projectService := services.NewProjectService(catalog.Projects())

	srv := &http.Server{
		Handler:           handlers.SetupRoutes(cfg, logger, projectService),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("addr", ln.Addr().String()),
			zap.String("env", cfg.Env),
			zap.String("version", version),
			zap.Int("projects", catalog.Len()),
		)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
