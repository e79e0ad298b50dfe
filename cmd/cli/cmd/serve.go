// Package cmd - serve command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ride-pricing/api"
	"ride-pricing/internal/bootstrap"
	"ride-pricing/internal/logging"
)

var serveAddr string

// serveCmd starts the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fare pricing HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	defer logging.Sync()

	engine, err := bootstrap.Engine(cfg)
	if err != nil {
		return err
	}

	server := api.NewServer(cfg, engine, Version)

	listen := cfg.Addr()
	if serveAddr != "" {
		listen = serveAddr
	}

	logging.Info("starting pricing service",
		zap.String("addr", listen),
		zap.String("version", Version),
	)
	return server.ListenAndServe(listen)
}
