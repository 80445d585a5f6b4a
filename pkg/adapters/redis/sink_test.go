package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"

	"gigflow/pkg/adapters/redis"
	"gigflow/pkg/domain"
	"gigflow/pkg/ports"
)

func newTestSink(t *testing.T, opts ...redis.Option) *redis.Sink {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	sink := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = sink.Close() })
	return sink
}

func TestRedisSink_Contract(t *testing.T) {
	ports.RunReceiptSinkContract(t, newTestSink(t))
}

func TestRedisSink_CustomKey(t *testing.T) {
	sink := newTestSink(t, redis.WithKey("billing:receipts"))
	ctx := context.Background()

	if err := sink.Record(ctx, domain.Receipt{MilestoneTitle: "A", Amount: 5, PaymentKind: domain.KindEscrow}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	receipts, err := sink.Receipts(ctx)
	if err != nil {
		t.Fatalf("Receipts failed: %v", err)
	}
	if len(receipts) != 1 || receipts[0].MilestoneTitle != "A" {
		t.Errorf("unexpected receipts: %+v", receipts)
	}
}
