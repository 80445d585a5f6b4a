package runtime_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigflow/internal/runtime"
	"gigflow/pkg/adapters/memory"
	"gigflow/pkg/domain"
	"gigflow/pkg/ports"
)

var _ ports.WorkflowRunner = (*runtime.Engine)(nil)

func fixedClock() func() time.Time {
	ts := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func newProject(milestone domain.Milestone) *domain.Project {
	return domain.NewProject("Website Redesign",
		domain.NewClient("Sara Chen", "sara@acme.io", "Acme Corp"),
		domain.NewFreelancer("Jon Reyes", "jon@dev.io", "Go, SQL", 75),
		milestone,
	)
}

func TestEngine_FixedPriceEscrowRun(t *testing.T) {
	sink := memory.NewSink()
	var output []string
	engine := runtime.NewEngine(sink,
		runtime.WithPresenter(func(text string) { output = append(output, text) }),
		runtime.WithClock(fixedClock()),
	)

	milestone := domain.NewFixedPriceMilestone("Website Redesign", "Full redesign", domain.NewEscrow(0), 2500)
	report := engine.Execute(context.Background(), newProject(milestone))

	require.True(t, report.Ok(), "run failed: %v", report.Err)
	assert.Equal(t, 2500.0, report.Amount)
	assert.Empty(t, report.Diagnostic())

	require.NotNil(t, report.Receipt)
	assert.Equal(t, "Website Redesign", report.Receipt.MilestoneTitle)
	assert.Equal(t, domain.KindEscrow, report.Receipt.PaymentKind)

	receipts, err := sink.Receipts(context.Background())
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, 2500.0, receipts[0].Amount)

	combined := strings.Join(output, "\n")
	assert.Contains(t, combined, "Client: Sara Chen (Acme Corp) - sara@acme.io")
	assert.Contains(t, combined, "Fixed-price milestone 'Website Redesign' completed!")
	assert.Contains(t, combined, "Processing escrow payment of $2500.00")

	// the placeholder method was rebound to the real amount
	assert.Equal(t, 2500.0, milestone.Payment().Amount())
}

func TestEngine_HourlyDirectRun(t *testing.T) {
	sink := memory.NewSink()
	engine := runtime.NewEngine(sink, runtime.WithClock(fixedClock()))

	milestone := domain.NewHourlyMilestone("API Integration", "Connect billing API", domain.NewDirect(0), 75)
	require.NoError(t, milestone.SetHoursWorked(12.5))

	report := engine.Execute(context.Background(), newProject(milestone))

	require.True(t, report.Ok(), "run failed: %v", report.Err)
	assert.Equal(t, 937.5, report.Amount)
	assert.Equal(t, domain.KindDirect, report.Receipt.PaymentKind)
}

func TestEngine_MissingCollaborator(t *testing.T) {
	sink := memory.NewSink()
	engine := runtime.NewEngine(sink)

	project := newProject(domain.NewFixedPriceMilestone("X", "", domain.NewEscrow(0), 100))
	project.Freelancer = nil

	report := engine.Execute(context.Background(), project)

	require.False(t, report.Ok())
	assert.ErrorIs(t, report.Err, domain.ErrMissingCollaborator)
	assert.Equal(t, domain.StageValidate, report.FailedStage)
	assert.Contains(t, report.Diagnostic(), "Error during execution:")

	receipts, err := sink.Receipts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, receipts, "aborted run must leave no receipts")
}

func TestEngine_NilProject(t *testing.T) {
	report := runtime.NewEngine(memory.NewSink()).Execute(context.Background(), nil)

	require.False(t, report.Ok())
	assert.ErrorIs(t, report.Err, domain.ErrMissingCollaborator)
	assert.Equal(t, domain.StageValidate, report.FailedStage)
}

func TestEngine_InvalidHoursAbortsCompletion(t *testing.T) {
	sink := memory.NewSink()
	var output []string
	engine := runtime.NewEngine(sink,
		runtime.WithPresenter(func(text string) { output = append(output, text) }),
	)

	milestone := domain.NewHourlyMilestone("Support", "Retainer hours", domain.NewDirect(0), 50)
	report := engine.Execute(context.Background(), newProject(milestone))

	require.False(t, report.Ok())
	assert.ErrorIs(t, report.Err, domain.ErrInvalidHours)
	assert.Equal(t, domain.StageComplete, report.FailedStage)
	assert.False(t, milestone.Completed())

	combined := strings.Join(output, "\n")
	assert.NotContains(t, combined, "Processing direct payment", "payment must not run after a failed completion")

	receipts, _ := sink.Receipts(context.Background())
	assert.Empty(t, receipts)
}

func TestEngine_ZeroAmountIsPaymentFailure(t *testing.T) {
	sink := memory.NewSink()
	var output []string
	engine := runtime.NewEngine(sink,
		runtime.WithPresenter(func(text string) { output = append(output, text) }),
	)

	milestone := domain.NewFixedPriceMilestone("Free Sample", "Zero-dollar deliverable", domain.NewEscrow(0), 0)
	report := engine.Execute(context.Background(), newProject(milestone))

	require.False(t, report.Ok())
	assert.ErrorIs(t, report.Err, domain.ErrPaymentFailure)
	assert.Equal(t, domain.StageCalculate, report.FailedStage)
	assert.True(t, milestone.Completed(), "completion side effect stands even when payment fails")

	combined := strings.Join(output, "\n")
	assert.NotContains(t, combined, "Processing escrow payment")

	receipts, _ := sink.Receipts(context.Background())
	assert.Empty(t, receipts)
}

type failingSink struct{}

func (failingSink) Record(context.Context, domain.Receipt) error {
	return errors.New("disk full")
}

func TestEngine_ReceiptWriteFailure(t *testing.T) {
	var output []string
	engine := runtime.NewEngine(failingSink{},
		runtime.WithPresenter(func(text string) { output = append(output, text) }),
	)

	report := engine.Execute(context.Background(),
		newProject(domain.NewFixedPriceMilestone("Build", "Implementation", domain.NewDirect(0), 1500)))

	require.False(t, report.Ok())
	assert.ErrorIs(t, report.Err, domain.ErrReceiptWrite)
	assert.Equal(t, domain.StageReceipt, report.FailedStage)
	assert.Nil(t, report.Receipt)

	// the payment already went through before the sink failed
	assert.Contains(t, strings.Join(output, "\n"), "Processing direct payment of $1500.00")
}

func TestEngine_LifecycleHooks(t *testing.T) {
	var entered, left []domain.Stage
	var payments []*domain.PaymentEvent
	var failures []*domain.FailureEvent

	hooks := domain.LifecycleHooks{
		OnStageEnter:       func(_ context.Context, e *domain.StageEvent) { entered = append(entered, e.Stage) },
		OnStageLeave:       func(_ context.Context, e *domain.StageEvent) { left = append(left, e.Stage) },
		OnPaymentProcessed: func(_ context.Context, e *domain.PaymentEvent) { payments = append(payments, e) },
		OnRunFailed:        func(_ context.Context, e *domain.FailureEvent) { failures = append(failures, e) },
	}

	engine := runtime.NewEngine(memory.NewSink(),
		runtime.WithLifecycleHooks(hooks),
		runtime.WithClock(fixedClock()),
	)

	report := engine.Execute(context.Background(),
		newProject(domain.NewFixedPriceMilestone("Build", "Implementation", domain.NewEscrow(0), 1500)))
	require.True(t, report.Ok(), "run failed: %v", report.Err)

	assert.Equal(t, domain.Stages(), entered)
	assert.Equal(t, domain.Stages(), left)
	require.Len(t, payments, 1)
	assert.Equal(t, 1500.0, payments[0].Amount)
	assert.Equal(t, domain.KindEscrow, payments[0].Kind)
	assert.Empty(t, failures)
}

func TestEngine_FailureHookFires(t *testing.T) {
	var failures []*domain.FailureEvent
	engine := runtime.NewEngine(memory.NewSink(),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnRunFailed: func(_ context.Context, e *domain.FailureEvent) { failures = append(failures, e) },
		}),
	)

	engine.Execute(context.Background(),
		newProject(domain.NewHourlyMilestone("Support", "", domain.NewDirect(0), 50)))

	require.Len(t, failures, 1)
	assert.Equal(t, domain.StageComplete, failures[0].Stage)
	assert.ErrorIs(t, failures[0].Err, domain.ErrInvalidHours)
}
