package cli

import (
	"github.com/spf13/cobra"

	"github.com/rmaia/critic/internal/scan/style"
)

var reviewStyleCmd = &cobra.Command{
	Use:   "style",
	Short: "Check code style and formatting",
	Long:  "Flags long lines, trailing whitespace, misplaced imports, and crowded statements.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReviewWith(style.New())
	},
}

func init() {
	reviewCmd.AddCommand(reviewStyleCmd)
}
