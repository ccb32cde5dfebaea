package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"curador/internal/config"
	"curador/internal/logger"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "curador",
	Short: "O Curador de Objetos API",
	Long: `Curador catalogs personal items and the places where they are kept.

Uploading a photo of an object stores the image, asks a vision model for a
category and tags, and records the object with those suggestions.`,
	// serve is the default action
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// setup loads configuration and builds the process logger.
func setup() (*config.AppConfig, *zap.Logger) {
	cfg := config.Load()
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	log := logger.New(cfg.LogLevel, cfg.Location())
	zap.ReplaceGlobals(log)
	return cfg, log
}
