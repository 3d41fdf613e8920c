// cmd/mcp-server/main.go: standalone HTTP MCP server for gopoly
//
// Exposes the polynomial tools as an HTTP endpoint for AI agent frameworks.
//
// Usage:
//
//	go run ./cmd/mcp-server -config gopoly.yaml
//	GOPOLY_SERVER_ADDR=:9090 go run ./cmd/mcp-server
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
// Metrics endpoint:   GET  /metrics
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/njchilds90/gopoly/internal/config"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	addr := flag.String("addr", "", "Listen address, overrides the config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logger := cfg.Log.Logger(os.Stdout)
	slog.SetDefault(logger)
	gin.SetMode(gin.ReleaseMode)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newRouter(cfg, logger),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("gopoly MCP server listening", "addr", cfg.Server.Addr, "field", cfg.Field)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
