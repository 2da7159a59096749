package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/UnknownOlympus/hermes/internal/api"
	"github.com/UnknownOlympus/hermes/internal/config"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the location API with health and metrics endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.MustLoad()
			logger := setupLogger(cfg.Env, os.Stdout)

			hermes, err := newApp(ctx, cfg, logger)
			if err != nil {
				return err
			}

			server := api.NewServer(
				fmt.Sprintf(":%d", cfg.Port),
				api.NewHandler(hermes.orchestrator, logger),
				hermes.registry,
				logger,
			)

			errCh := make(chan error, 1)
			go func() {
				if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

			select {
			case <-ctx.Done():
				logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")
			case err = <-errCh:
				logger.ErrorContext(ctx, "HTTP server failed", "error", err)
				return err
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err = server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("failed to shut down http server: %w", err)
			}

			logger.InfoContext(ctx, "Application stopped gracefully.")

			return nil
		},
	}
}
