package main

import (
	"github.com/spf13/cobra"

	"gigflow/internal/cli"
	"gigflow/internal/presentation/tui"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run two scripted workflows showing the success and failure paths",
	Run: func(cmd *cobra.Command, args []string) {
		opts := sessionOptions(cmd)
		if !opts.Plain {
			tui.PrintBanner()
		}
		cli.RunDemo(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
