package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the s11a version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("s11a %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
