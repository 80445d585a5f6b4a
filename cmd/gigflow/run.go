package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gigflow/internal/cli"
	"gigflow/internal/manifest"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <manifest.yaml>",
	Short: "Run the workflow described by a project manifest",
	Long: `Loads a YAML project manifest and runs its workflow: completes the
milestone, processes the payment, and appends a receipt to the receipt log.

A workflow that aborts (e.g. invalid hours, payment failure) reports the
failure on stdout and still exits 0; only setup problems such as an
unreadable or invalid manifest exit non-zero.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		project, err := manifest.Load(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		cli.RunProject(cmd.Context(), project, sessionOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
