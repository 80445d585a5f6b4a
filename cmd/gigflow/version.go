package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gigflow"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gigflow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gigflow version %s\n", strings.TrimSpace(gigflow.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
