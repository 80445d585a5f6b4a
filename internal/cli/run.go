// Package cli wires the engine, sinks, and presentation for the gigflow
// command. Commands stay thin; this package owns the session logic.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"gigflow"
	"gigflow/internal/logging"
	"gigflow/internal/presentation/tui"
	"gigflow/pkg/adapters/file"
	"gigflow/pkg/adapters/redis"
	"gigflow/pkg/domain"
	"gigflow/pkg/ports"
)

// RunOptions configures a workflow session started from the command line.
type RunOptions struct {
	// ReceiptPath is the receipt log location. Empty means the default
	// payment_receipts.txt. Ignored when RedisAddr is set.
	ReceiptPath string

	// RedisAddr switches receipt storage to a Redis list at host:port.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Plain disables markdown rendering and prints raw text.
	Plain bool

	// LogLevel is the textual slog level (debug, info, warn, error).
	LogLevel string
}

// BuildSink resolves the receipt sink for the session. The caller owns
// closing it when it is an io.Closer.
func BuildSink(opts RunOptions) ports.ReceiptSink {
	if opts.RedisAddr != "" {
		return redis.New(opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
	}
	return file.NewSink(opts.ReceiptPath)
}

// BuildLogger resolves the session logger, falling back to info level on an
// unrecognized value.
func BuildLogger(opts RunOptions) *slog.Logger {
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		fmt.Printf("Warning: %v, using info\n", err)
	}
	return logging.New(level)
}

// BuildPresenter resolves the output presenter. Markdown rendering falls
// back to raw text when the renderer errors.
func BuildPresenter(opts RunOptions) func(string) {
	if opts.Plain {
		return func(text string) { fmt.Println(text) }
	}
	render := tui.NewRenderer()
	return func(text string) {
		out, err := render(text)
		if err != nil {
			fmt.Println(text)
			return
		}
		fmt.Print(out)
	}
}

// RunProject executes one project workflow with the session configuration
// and prints the outcome. The returned report carries the failure detail;
// a failed workflow is not a process error.
func RunProject(ctx context.Context, project *domain.Project, opts RunOptions) *domain.Report {
	eng := gigflow.New(
		gigflow.WithReceiptSink(BuildSink(opts)),
		gigflow.WithLogger(BuildLogger(opts)),
		gigflow.WithPresenter(BuildPresenter(opts)),
	)

	report := eng.Run(ctx, project)
	if report.Ok() {
		fmt.Printf("\nWorkflow finished: $%.2f paid for '%s'\n", report.Amount, report.Receipt.MilestoneTitle)
	}
	return report
}
