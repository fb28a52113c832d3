package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/recordgen/internal/presets"
	"pkg.jsn.cam/recordgen/internal/server"
	"pkg.jsn.cam/recordgen/internal/store"
	"pkg.jsn.cam/recordgen/pkg/recordgen"
)

var (
	serveAddr   string
	serveDBPath string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and browser UI",
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "Preset database path; empty keeps presets in memory (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath = serveDBPath
	}

	backend, err := store.Open(cfg.DBPath, presets.Bucket)
	if err != nil {
		return fmt.Errorf("open preset store: %w", err)
	}
	defer backend.Close()

	srv := server.New(server.Options{
		MaxExportPages: cfg.MaxExportPages,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	}, recordgen.NewGenerator(), presets.New(backend, logger), logger)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			slog.String("addr", cfg.Addr),
			slog.String("db", cfg.DBPath),
			slog.String("ui", "/ui/"),
		)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
