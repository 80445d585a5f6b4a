// Package file provides the append-only text file receipt sink.
package file

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gigflow/pkg/domain"
)

// DefaultPath is the receipt log written when no path is configured.
const DefaultPath = "payment_receipts.txt"

// Sink implements ports.ReceiptSink on a local text file. Each Record call
// opens the file in append mode, writes one human-readable receipt block,
// syncs, and closes, so the destination is always left flushed. A mutex
// serializes writers so a single Sink can be shared across runs; the
// append is the atomic unit.
//
// Sink is intentionally not a ReceiptLister: the log is a write-only
// audit trail, not a queryable store.
type Sink struct {
	path string
	mu   sync.Mutex
}

// NewSink creates a file sink at the given path. If path is empty it
// defaults to DefaultPath in the working directory.
func NewSink(path string) *Sink {
	if path == "" {
		path = DefaultPath
	}
	return &Sink{path: path}
}

// Path returns the configured log file path.
func (s *Sink) Path() string { return s.path }

// Record appends one receipt block to the log file.
func (s *Sink) Record(ctx context.Context, r domain.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open receipt log: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "=== PAYMENT RECEIPT ===\nMilestone: %s\nAmount: $%.2f\nPayment Type: %s\nTimestamp: %s\n========================\n\n",
		r.MilestoneTitle, r.Amount, r.PaymentKind, r.Timestamp.Format("2006-01-02 15:04:05"))
	if err != nil {
		return fmt.Errorf("failed to write receipt: %w", err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to flush receipt log: %w", err)
	}
	return nil
}
