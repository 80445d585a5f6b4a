package ports

import (
	"context"

	"gigflow/pkg/domain"
)

// ReceiptSink records completed payments to a durable append-only
// destination. Record must leave the destination flushed after each call,
// and implementations shared across runs must serialize appends (append is
// the only required atomic unit).
type ReceiptSink interface {
	Record(ctx context.Context, r domain.Receipt) error
}

// ReceiptLister is an optional capability of sinks that can read back the
// receipts they recorded, in append order. Discover it by type assertion
// on a ReceiptSink.
type ReceiptLister interface {
	Receipts(ctx context.Context) ([]domain.Receipt, error)
}
