package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"gigflow"
	httpAdapter "gigflow/internal/adapters/http"
	"gigflow/internal/cli"
	"gigflow/internal/observability"
	"gigflow/pkg/domain"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the workflow HTTP server",
	Long:  `Starts gigflow in server mode, accepting project manifests over a JSON API and exposing Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		opts := sessionOptions(cmd)

		logger := cli.BuildLogger(opts)
		sink := cli.BuildSink(opts)
		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

		eng := gigflow.New(
			gigflow.WithReceiptSink(sink),
			gigflow.WithLogger(logger),
			gigflow.WithLifecycleHooks(metrics.Hooks()),
		)

		handler := httpAdapter.NewHandler(
			runnerFunc(eng.Run),
			sink,
			logger,
			gigflow.Version,
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Gigflow Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Gigflow Server stopped gracefully")
		}
	},
}

// runnerFunc adapts the facade's Run method to the WorkflowRunner port.
type runnerFunc func(context.Context, *domain.Project) *domain.Report

func (f runnerFunc) Execute(ctx context.Context, p *domain.Project) *domain.Report {
	return f(ctx, p)
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
