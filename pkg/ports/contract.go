package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigflow/pkg/domain"
)

// RunReceiptSinkContract runs a suite of tests to verify that a ReceiptSink
// implementation adheres to the interface contract. Sinks that also
// implement ReceiptLister get their read path verified too.
func RunReceiptSinkContract(t *testing.T, sink ReceiptSink) {
	ctx := context.Background()

	stamp := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	first := domain.Receipt{
		MilestoneTitle: "Website",
		Amount:         2500,
		PaymentKind:    domain.KindEscrow,
		Timestamp:      stamp,
	}
	second := domain.Receipt{
		MilestoneTitle: "API Integration",
		Amount:         937.50,
		PaymentKind:    domain.KindDirect,
		Timestamp:      stamp.Add(time.Hour),
	}

	t.Run("Record", func(t *testing.T) {
		require.NoError(t, sink.Record(ctx, first), "Record should not return error")
		require.NoError(t, sink.Record(ctx, second), "appending a second receipt should not return error")
	})

	lister, ok := sink.(ReceiptLister)
	if !ok {
		return
	}

	t.Run("List", func(t *testing.T) {
		receipts, err := lister.Receipts(ctx)
		require.NoError(t, err)
		require.Len(t, receipts, 2, "receipts should be returned in append order")

		assert.Equal(t, "Website", receipts[0].MilestoneTitle)
		assert.Equal(t, 2500.0, receipts[0].Amount)
		assert.Equal(t, domain.KindEscrow, receipts[0].PaymentKind)
		assert.True(t, receipts[0].Timestamp.Equal(stamp), "timestamp should round-trip")

		assert.Equal(t, "API Integration", receipts[1].MilestoneTitle)
		assert.Equal(t, 937.50, receipts[1].Amount)
		assert.Equal(t, domain.KindDirect, receipts[1].PaymentKind)
	})
}
