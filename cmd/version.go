package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", bold("wmstatus"), version)
		if gitCommit != "" {
			fmt.Printf("commit: %s\n", gitCommit)
		}
		if buildTime != "" {
			fmt.Printf("built:  %s\n", buildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
