package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/feedline-dev/feedline/internal/config"
	"github.com/feedline-dev/feedline/internal/logger"
	"github.com/feedline-dev/feedline/internal/router"
	"github.com/feedline-dev/feedline/internal/setup"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger.Initialize(cfg.LogLevel, cfg.LogJSON)

	deps := setup.SetupDependencies(cfg)
	r := router.SetupRouter(deps)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Log.Info("feedline started", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
