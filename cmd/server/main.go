// Package main - entry point for the fare pricing server
package main

import (
	"flag"

	"go.uber.org/zap"

	"ride-pricing/api"
	"ride-pricing/internal/bootstrap"
	"ride-pricing/internal/config"
	"ride-pricing/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "listen address (overrides PORT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", zap.Error(err))
	}
	_ = logging.Initialize(cfg.LogLevel, cfg.LogFormat)
	defer logging.Sync()

	engine, err := bootstrap.Engine(cfg)
	if err != nil {
		logging.Fatal("failed to build fare engine", zap.Error(err))
	}

	server := api.NewServer(cfg, engine, version)

	listen := cfg.Addr()
	if *addr != "" {
		listen = *addr
	}

	logging.Info("starting pricing service",
		zap.String("addr", listen),
		zap.String("version", version),
	)
	if err := server.ListenAndServe(listen); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
