package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of quicknotes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quicknotes version %s\n", effectiveVersion(Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
