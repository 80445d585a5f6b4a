package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gigflow/internal/cli"
	"gigflow/internal/presentation/tui"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Build a project interactively and run its workflow",
	Long:  `Prompts for the client, freelancer, and milestone details, then runs the workflow immediately.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := sessionOptions(cmd)
		if !opts.Plain {
			tui.PrintBanner()
		}

		project, err := cli.CollectProject(os.Stdin, os.Stdout)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println()
		cli.RunProject(cmd.Context(), project, opts)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
