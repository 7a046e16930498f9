// Package cli implements the critic command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rmaia/critic/internal/config"
)

var version = "dev"

var (
	fileFlag     string
	languageFlag string
	outputFlag   string
	aiFlag       bool
	verboseFlag  bool
)

// appConfig holds the loaded configuration, available after PersistentPreRunE.
var appConfig *config.Config

// logger is the process-wide logger, configured in PersistentPreRunE.
var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "critic",
	Short: "Critic — static code review for snippets and files",
	Long: `Critic analyzes source code for security issues, style problems,
complexity hotspots, and missing documentation, and computes quality
metrics such as cyclomatic complexity and a maintainability grade.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		config.ApplyFlags(cfg, cmd)

		// Sync config values back to flag variables so all existing commands
		// pick up config-file and env-var defaults transparently.
		outputFlag = cfg.OutputFormat

		appConfig = cfg

		level := zerolog.WarnLevel
		if verboseFlag {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "source file to review ('-' reads stdin)")
	rootCmd.PersistentFlags().StringVarP(&languageFlag, "language", "l", "", "source language: python, javascript, typescript (auto-detected if empty)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "table", "output format: table, json, markdown, html")
	rootCmd.PersistentFlags().BoolVar(&aiFlag, "ai", false, "include AI-powered suggestions (needs GOOGLE_API_KEY)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(versionCmd)
}
