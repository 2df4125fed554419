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

	"text-analysis-dashboard/backendserver"
	"text-analysis-dashboard/classifier"
	"text-analysis-dashboard/config"
	"text-analysis-dashboard/database"
	"text-analysis-dashboard/logging"
	"text-analysis-dashboard/server"
)

func main() {
	configPath := flag.String("config", "textdash.yaml", "Path to config file")
	addrFlag := flag.String("addr", "", "HTTP listen address (overrides store.addr)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *addrFlag != "" {
		cfg.Store.Addr = *addrFlag
	}
	if err := config.ValidateStore(cfg); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logging.Configure(cfg.Logging.Level)
	gin.SetMode(gin.ReleaseMode)

	store, err := database.Open(cfg.Store.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	c := classifier.NewHTTP(cfg.Store.ClassifierURL, cfg.Store.ClassifierTimeout)
	srv := &http.Server{
		Addr:    cfg.Store.Addr,
		Handler: backendserver.New(store, c).Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting analysis backend", "addr", cfg.Store.Addr, "db", cfg.Store.DBPath, "classifier", cfg.Store.ClassifierURL)
	if err := server.Run(ctx, srv); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
