package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/may-ank-dot/MatchingEngine/internal/config"
	"github.com/may-ank-dot/MatchingEngine/internal/logger"
	"github.com/may-ank-dot/MatchingEngine/internal/matching"
	"github.com/may-ank-dot/MatchingEngine/internal/server"
	"github.com/may-ank-dot/MatchingEngine/internal/skills"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the matching HTTP API server",
	Long:  "Start an HTTP server exposing the match and parse endpoints.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.JSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	catalog, err := skills.NewCatalog(cfg.ExtraPatterns...)
	if err != nil {
		return err
	}

	engine := matching.New(catalog, log)
	srv := server.New(server.Config{
		Listen:          cfg.Listen,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, engine, log)

	return srv.Start()
}
