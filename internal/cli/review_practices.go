package cli

import (
	"github.com/spf13/cobra"

	"github.com/rmaia/critic/internal/scan/practices"
)

var reviewPracticesCmd = &cobra.Command{
	Use:   "practices",
	Short: "Check language best practices",
	Long:  "Flags anti-patterns like bare excepts, mutable default arguments, var declarations, and loose equality.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReviewWith(practices.New())
	},
}

func init() {
	reviewCmd.AddCommand(reviewPracticesCmd)
}
