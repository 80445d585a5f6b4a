package gigflow

import (
	"context"
	"log/slog"
	"time"

	"gigflow/internal/logging"
	"gigflow/internal/runtime"
	"gigflow/pkg/adapters/file"
	"gigflow/pkg/domain"
	"gigflow/pkg/ports"
)

// Version is the library version, also reported by the CLI.
const Version = "0.3.0"

// Engine is the high-level entry point for the gigflow library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime     *runtime.Engine
	sink        ports.ReceiptSink
	logger      *slog.Logger
	runtimeOpts []runtime.EngineOption
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithReceiptSink injects a custom receipt sink, bypassing the default
// file-backed one.
func WithReceiptSink(sink ports.ReceiptSink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithLifecycleHooks(hooks))
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithPresenter routes the engine's human-readable output (briefs,
// completion notices, payment confirmations) to p. The default discards it.
func WithPresenter(p func(string)) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithPresenter(p))
	}
}

// WithClock injects the timestamp source used for receipts and events.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithClock(now))
	}
}

// New initializes a gigflow Engine.
// By default receipts append to payment_receipts.txt in the working
// directory; inject a different sink with WithReceiptSink.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.sink == nil {
		eng.sink = file.NewSink(file.DefaultPath)
	}
	if eng.logger == nil {
		eng.logger = logging.New(slog.LevelInfo)
	}

	eng.runtimeOpts = append(eng.runtimeOpts, runtime.WithLogger(eng.logger))
	eng.runtime = runtime.NewEngine(eng.sink, eng.runtimeOpts...)
	return eng
}

// Run executes the project workflow once and returns its report. It never
// returns a Go error; inspect Report.Ok and Report.Err for the outcome.
func (e *Engine) Run(ctx context.Context, project *domain.Project) *domain.Report {
	return e.runtime.Execute(ctx, project)
}

// Sink exposes the configured receipt sink, e.g. to list receipts when the
// sink supports it.
func (e *Engine) Sink() ports.ReceiptSink {
	return e.sink
}
