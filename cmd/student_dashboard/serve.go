package main

import (
	"fmt"
	"os"

	"github.com/jonathan/student-dashboard/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort     int
	serveBasePath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	Long:  `Start an HTTP server that renders the dashboard pages and exposes the JSON API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from PORT, config file, or 8080)")
	serveCmd.Flags().StringVar(&serveBasePath, "base-path", "", "Path prefix to mount the dashboard under, e.g. /student-dashboard")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("base-path") {
		cfg.BasePath = serveBasePath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := setupLogger(cfg, os.Stdout)

	svc, err := newService(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:     cfg.Port,
		BasePath: cfg.BasePath,
	}, svc, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
