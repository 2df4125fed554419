package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"text-analysis-dashboard/backend"
	"text-analysis-dashboard/config"
	"text-analysis-dashboard/gateway"
	"text-analysis-dashboard/handlers"
	"text-analysis-dashboard/logging"
	"text-analysis-dashboard/palette"
	"text-analysis-dashboard/server"
)

func main() {
	configPath := flag.String("config", "textdash.yaml", "Path to config file")
	addrFlag := flag.String("addr", "", "HTTP listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *addrFlag != "" {
		cfg.Server.Addr = *addrFlag
	}
	if err := config.Validate(cfg); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logging.Configure(cfg.Logging.Level)
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, cfg.Backend.MaxResponseBytes)
	if err := client.WaitReady(ctx, cfg.Backend.WaitReady); err != nil {
		slog.Warn("backend did not become ready, starting anyway", "base_url", cfg.Backend.BaseURL, "error", err)
	}

	h := handlers.New(gateway.New(client), palette.Default, handlers.PoliciesFromConfig(cfg.Views))
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handlers.NewRouter(h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	slog.Info("starting text analysis dashboard", "addr", cfg.Server.Addr, "backend", cfg.Backend.BaseURL)
	if err := server.Run(ctx, srv); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
