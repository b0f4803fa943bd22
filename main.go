// Home energy dashboard server. Loads the minute-level readings CSV on
// every interaction and serves the four dashboard views over HTTP and
// websocket.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/boracolakoglu/energy-dashboard/pkg/config"
	"github.com/boracolakoglu/energy-dashboard/pkg/server"
)

func main() {
	if err := config.LoadDashboardConfig(); err != nil {
		slog.Error("failed to load dashboard config", "error", err)
		os.Exit(1)
	}
	cfg := config.ActiveDashboardConfig

	logger := newLogger(cfg.LogFormat)
	slog.SetDefault(logger)

	srv := server.New(cfg, logger)

	listener := fmt.Sprintf("%s:%d", cfg.ListenAddress, cfg.ListenPort)
	httpServer := &http.Server{
		Addr:    listener,
		Handler: srv.Routes(),
	}

	// Shut down cleanly on interrupt.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		logger.Info("interrupt received, shutting down")
		srv.CloseAll()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(ctx)
	}()

	logger.Info("starting home energy dashboard", "listen", listener, "csv", cfg.CSVPath)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
