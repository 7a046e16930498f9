package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmaia/critic/internal/ai"
	"github.com/rmaia/critic/internal/analyzer"
	"github.com/rmaia/critic/internal/metrics"
	"github.com/rmaia/critic/internal/web"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Critic review server",
	Long:  "Launches the HTTP API for reviewing code over POST /api/review.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", ":3000", "listen address (host:port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	reg := analyzer.NewRegistry()
	for _, s := range allScanners() {
		reg.Register(s)
	}

	a := analyzer.New(reg, metrics.NewCollector(metricParams()), reviewOptions(), logger)

	reviewer, err := ai.NewReviewer(context.Background(), "", appConfig.AIModel)
	if err != nil {
		return err
	}

	addr := appConfig.ListenAddr
	if cmd.Flags().Changed("addr") {
		addr = addrFlag
	}

	s := web.NewServer(addr, a, reviewer, appConfig.AITimeout, logger)
	fmt.Fprintf(cmd.OutOrStdout(), "Critic review server listening on %s\n", addr)
	return s.Start()
}
