package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"threatdigest/internal/logging"
	"threatdigest/internal/server"
)

func main() {
	_ = godotenv.Load()
	logging.Init()

	cfg := server.LoadConfig()
	srv := server.New(cfg)

	srv.StartMetrics(cfg.MetricsAddr)

	slog.Info("listening", "addr", cfg.HTTPAddr, "site", cfg.SiteDir)
	if err := http.ListenAndServe(cfg.HTTPAddr, srv.Router()); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
