package cli

import (
	"github.com/spf13/cobra"

	"github.com/rmaia/critic/internal/scan/docs"
)

var reviewDocsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Check documentation coverage",
	Long:  "Flags public functions and classes that lack a docstring or leading comment.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReviewWith(docs.New())
	},
}

func init() {
	reviewCmd.AddCommand(reviewDocsCmd)
}
