package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gigflow/internal/cli"
	"gigflow/pkg/adapters/file"
)

var rootCmd = &cobra.Command{
	Use:   "gigflow",
	Short: "Gigflow runs freelance project payment workflows",
	Long: `Gigflow takes a project (a client, a freelancer, and a milestone),
completes the milestone, processes the payment, and records a receipt.
Projects come from YAML manifests, an interactive prompt, or the HTTP API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// sessionOptions assembles RunOptions from the persistent flags.
func sessionOptions(cmd *cobra.Command) cli.RunOptions {
	receipts, _ := cmd.Flags().GetString("receipts")
	redisAddr, _ := cmd.Flags().GetString("redis")
	redisPassword, _ := cmd.Flags().GetString("redis-password")
	redisDB, _ := cmd.Flags().GetInt("redis-db")
	plain, _ := cmd.Flags().GetBool("plain")
	logLevel, _ := cmd.Flags().GetString("log-level")

	return cli.RunOptions{
		ReceiptPath:   receipts,
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		RedisDB:       redisDB,
		Plain:         plain,
		LogLevel:      logLevel,
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("receipts", file.DefaultPath, "Receipt log file path")
	rootCmd.PersistentFlags().String("redis", "", "Record receipts to Redis at host:port instead of a file")
	rootCmd.PersistentFlags().String("redis-password", "", "Redis password")
	rootCmd.PersistentFlags().Int("redis-db", 0, "Redis database number")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable markdown rendering")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
