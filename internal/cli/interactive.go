package cli

import (
	"github.com/spf13/cobra"

	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive TUI mode",
	Long:  "Start an interactive terminal UI for reviewing files with any combination of scanners.",
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	reg := analyzer.NewRegistry()
	for _, s := range allScanners() {
		reg.Register(s)
	}

	return tui.Run(reg, reviewOptions(), metricParams())
}
