package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of Critic",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("critic version %s\n", version)
	},
}
