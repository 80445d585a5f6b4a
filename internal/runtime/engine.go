// Package runtime implements the workflow pipeline: the ordered,
// short-circuiting sequence that takes one project from validation through
// completion, payment, and receipt.
package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"gigflow/pkg/domain"
	"gigflow/pkg/ports"
)

// Presenter receives the human-readable output of a run (briefs, completion
// notices, payment confirmations). The default discards nothing and writes
// plain text; hosts may swap in a markdown renderer.
type Presenter func(text string)

// Engine drives one project workflow at a time. It is the sole error
// boundary: Execute never returns a Go error, it folds every failure into
// the returned report.
type Engine struct {
	sink    ports.ReceiptSink
	logger  *slog.Logger
	hooks   domain.LifecycleHooks
	present Presenter
	now     func() time.Time
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithPresenter sets the output presenter.
func WithPresenter(p Presenter) EngineOption {
	return func(e *Engine) {
		if p != nil {
			e.present = p
		}
	}
}

// WithClock injects the timestamp source used for receipts and events.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine that records receipts to sink.
func NewEngine(sink ports.ReceiptSink, opts ...EngineOption) *Engine {
	e := &Engine{
		sink:    sink,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		present: func(string) {},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs the project workflow exactly once, in order, short-circuiting
// on the first failure:
//
//	validate -> brief -> complete -> calculate -> payment -> receipt
//
// A failure aborts the remaining stages but does not roll back side effects
// already produced (output already presented, payment already processed).
func (e *Engine) Execute(ctx context.Context, project *domain.Project) *domain.Report {
	name := ""
	if project != nil {
		name = project.Name
	}
	report := &domain.Report{Project: name}
	log := e.logger.With("project", name)

	// 1. Validate collaborators.
	e.enterStage(ctx, report, domain.StageValidate)
	if project == nil || project.Client == nil || project.Freelancer == nil || project.Milestone == nil {
		return e.fail(ctx, log, report, domain.StageValidate,
			fmt.Errorf("%w: client, freelancer, and milestone are required", domain.ErrMissingCollaborator))
	}
	e.leaveStage(ctx, report, domain.StageValidate)

	milestone := project.Milestone

	// 2. Brief: read-only display of participants and milestone.
	e.enterStage(ctx, report, domain.StageBrief)
	e.present(e.brief(project))
	e.leaveStage(ctx, report, domain.StageBrief)

	// 3. Complete the milestone.
	e.enterStage(ctx, report, domain.StageComplete)
	notice, err := milestone.Complete()
	if err != nil {
		return e.fail(ctx, log, report, domain.StageComplete, err)
	}
	e.present(notice)
	e.leaveStage(ctx, report, domain.StageComplete)

	// 4. Calculate the amount due.
	e.enterStage(ctx, report, domain.StageCalculate)
	amount := milestone.CalculatePayment()
	if amount <= 0 {
		return e.fail(ctx, log, report, domain.StageCalculate,
			fmt.Errorf("%w (calculated $%.2f)", domain.ErrPaymentFailure, amount))
	}
	report.Amount = amount
	e.leaveStage(ctx, report, domain.StageCalculate)

	// 5. Process payment. If the attached method still carries a placeholder
	// amount, rebind a freshly constructed one; amounts are never mutated in
	// place.
	e.enterStage(ctx, report, domain.StagePayment)
	payment := milestone.Payment()
	if payment.Amount() != amount {
		replacement, err := domain.NewPaymentMethod(payment.Kind(), amount)
		if err != nil {
			return e.fail(ctx, log, report, domain.StagePayment, err)
		}
		milestone.AttachPayment(replacement)
		payment = replacement
	}
	e.present(payment.Process())
	if e.hooks.OnPaymentProcessed != nil {
		e.hooks.OnPaymentProcessed(ctx, &domain.PaymentEvent{
			Timestamp: e.now(),
			Project:   name,
			Kind:      payment.Kind(),
			Amount:    amount,
		})
	}
	log.Info("payment processed", "kind", payment.Kind(), "amount", amount)
	e.leaveStage(ctx, report, domain.StagePayment)

	// 6. Record the receipt. The payment side effect above is not rolled
	// back if this fails; the inconsistency window is accepted.
	e.enterStage(ctx, report, domain.StageReceipt)
	receipt := domain.Receipt{
		MilestoneTitle: milestone.Title(),
		Amount:         amount,
		PaymentKind:    payment.Kind(),
		Timestamp:      e.now(),
	}
	if err := e.sink.Record(ctx, receipt); err != nil {
		return e.fail(ctx, log, report, domain.StageReceipt,
			fmt.Errorf("%w: %v", domain.ErrReceiptWrite, err))
	}
	report.Receipt = &receipt
	e.leaveStage(ctx, report, domain.StageReceipt)

	report.FinishedAt = e.now()
	log.Info("workflow completed", "amount", amount)
	return report
}

// brief builds the read-only markdown report of participants and milestone.
func (e *Engine) brief(project *domain.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Project: %s\n\n", project.Name)
	b.WriteString("Participants:\n")
	fmt.Fprintf(&b, "- %s\n", project.Client.Summary())
	fmt.Fprintf(&b, "- %s\n\n", project.Freelancer.Summary())
	b.WriteString(project.Milestone.Summary())
	return b.String()
}

func (e *Engine) enterStage(ctx context.Context, r *domain.Report, stage domain.Stage) {
	if e.hooks.OnStageEnter != nil {
		e.hooks.OnStageEnter(ctx, &domain.StageEvent{Timestamp: e.now(), Project: r.Project, Stage: stage})
	}
}

func (e *Engine) leaveStage(ctx context.Context, r *domain.Report, stage domain.Stage) {
	if e.hooks.OnStageLeave != nil {
		e.hooks.OnStageLeave(ctx, &domain.StageEvent{Timestamp: e.now(), Project: r.Project, Stage: stage})
	}
}

// fail finalizes the report for an aborted run. No stage after the failing
// one executes.
func (e *Engine) fail(ctx context.Context, log *slog.Logger, r *domain.Report, stage domain.Stage, err error) *domain.Report {
	r.FailedStage = stage
	r.Err = err
	r.FinishedAt = e.now()

	if e.hooks.OnRunFailed != nil {
		e.hooks.OnRunFailed(ctx, &domain.FailureEvent{Timestamp: e.now(), Project: r.Project, Stage: stage, Err: err})
	}
	log.Error("workflow aborted", "stage", string(stage), "error", err)
	e.present(r.Diagnostic())
	return r
}
