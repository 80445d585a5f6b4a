// Package memory provides an in-memory receipt sink for tests and
// embedded use.
package memory

import (
	"context"
	"sync"

	"gigflow/pkg/domain"
)

// Sink implements ports.ReceiptSink and ports.ReceiptLister in memory.
// Safe for concurrent use.
type Sink struct {
	receipts []domain.Receipt
	mu       sync.RWMutex
}

// NewSink creates an empty in-memory sink.
func NewSink() *Sink {
	return &Sink{}
}

// Record appends the receipt.
func (s *Sink) Record(ctx context.Context, r domain.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipts = append(s.receipts, r)
	return nil
}

// Receipts returns a copy of the recorded receipts in append order, so
// callers can't mutate sink state through the returned slice.
func (s *Sink) Receipts(ctx context.Context) ([]domain.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Receipt, len(s.receipts))
	copy(out, s.receipts)
	return out, nil
}
