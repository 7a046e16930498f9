package cli

import (
	"github.com/spf13/cobra"

	"github.com/rmaia/critic/internal/scan/security"
)

var reviewSecurityCmd = &cobra.Command{
	Use:   "security",
	Short: "Scan for dangerous code patterns",
	Long:  "Detects injection-prone calls, unsafe deserialization, and hardcoded credentials.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReviewWith(security.New())
	},
}

func init() {
	reviewCmd.AddCommand(reviewSecurityCmd)
}
