package gigflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigflow"
	"gigflow/pkg/adapters/memory"
	"gigflow/pkg/domain"
	"gigflow/pkg/ports"
)

func TestEngine_RunWithInjectedSink(t *testing.T) {
	sink := memory.NewSink()
	eng := gigflow.New(gigflow.WithReceiptSink(sink))

	project := domain.NewProject("Website Redesign",
		domain.NewClient("Sara Chen", "sara@acme.io", "Acme Corp"),
		domain.NewFreelancer("Jon Reyes", "jon@dev.io", "Go, SQL", 75),
		domain.NewFixedPriceMilestone("Website Redesign", "Full redesign", domain.NewEscrow(0), 2500),
	)

	report := eng.Run(context.Background(), project)
	require.True(t, report.Ok(), "run failed: %v", report.Err)
	assert.Equal(t, 2500.0, report.Amount)

	receipts, err := sink.Receipts(context.Background())
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, "Website Redesign", receipts[0].MilestoneTitle)
}

func TestEngine_SinkAccessor(t *testing.T) {
	sink := memory.NewSink()
	eng := gigflow.New(gigflow.WithReceiptSink(sink))

	got, ok := eng.Sink().(ports.ReceiptLister)
	require.True(t, ok)
	assert.Equal(t, ports.ReceiptLister(sink), got)
}

func TestEngine_FailureSurfacesInReport(t *testing.T) {
	eng := gigflow.New(gigflow.WithReceiptSink(memory.NewSink()))

	report := eng.Run(context.Background(), nil)
	require.False(t, report.Ok())
	assert.ErrorIs(t, report.Err, domain.ErrMissingCollaborator)
}
