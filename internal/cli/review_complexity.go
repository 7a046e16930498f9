package cli

import (
	"github.com/spf13/cobra"

	"github.com/rmaia/critic/internal/scan/complexity"
)

var reviewComplexityCmd = &cobra.Command{
	Use:   "complexity",
	Short: "Check complexity thresholds",
	Long:  "Flags functions whose cyclomatic complexity or nesting depth exceed the configured limits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReviewWith(complexity.New())
	},
}

func init() {
	reviewCmd.AddCommand(reviewComplexityCmd)
}
