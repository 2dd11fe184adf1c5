// Package cmd holds the command line entry points of the café API.
package cmd

import (
	"fmt"
	"os"

	"github.com/7248-om/gshock12/config"
	"github.com/7248-om/gshock12/database"
	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/response"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// Global flags
	envFile  string
	logLevel string

	cfg *config.Configuration
)

var rootCmd = &cobra.Command{
	Use:   "gshock",
	Short: "Rabuste café API server",
	Long: `gshock serves the Rabuste café API: menu, gallery, workshops,
orders with Razorpay checkout, the virtual barista and admin tooling.

Run without a subcommand to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		loaded, err := config.Load(files...)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		cfg = loaded

		if err := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile}); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		response.SetProduction(cfg.IsProduction())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB connects and migrates every table.
func openDB() (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
