package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/recordgen/internal/config"
	"pkg.jsn.cam/recordgen/internal/logging"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	// loaded by the root PersistentPreRunE
	cfg    config.Config
	logger *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "recordgen",
		Short: "Deterministic fake person-record generator",
		Long: `recordgen generates pages of fake person records (name, address, phone)
for a region, reproducibly from a seed, with optional typo-style errors.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = logFormat
			}

			logger, err = logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(
		serveCmd,
		pageCmd,
		exportCmd,
		seedCmd,
		browseCmd,
		regionsCmd,
		presetsCmd,
		versionCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
