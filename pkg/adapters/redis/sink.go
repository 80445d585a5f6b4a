// Package redis provides a Redis-backed receipt sink.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"gigflow/pkg/domain"
)

// Sink implements ports.ReceiptSink and ports.ReceiptLister on a Redis
// list. Receipts are RPUSHed as JSON, so append order is preserved and a
// shared Redis instance serializes concurrent writers for free.
type Sink struct {
	client *backend.Client
	key    string
}

type Option func(*Sink)

// WithKey overrides the list key receipts are appended to.
func WithKey(key string) Option {
	return func(s *Sink) {
		s.key = key
	}
}

// New creates a Redis sink with its own client.
func New(address, password string, db int, opts ...Option) *Sink {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis sink from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Sink {
	sink := &Sink{
		client: client,
		key:    "gigflow:receipts",
	}
	for _, opt := range opts {
		opt(sink)
	}
	return sink
}

// Record appends the receipt to the list.
func (s *Sink) Record(ctx context.Context, r domain.Receipt) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt: %w", err)
	}
	if err := s.client.RPush(ctx, s.key, data).Err(); err != nil {
		return fmt.Errorf("failed to append receipt to redis: %w", err)
	}
	return nil
}

// Receipts returns all recorded receipts in append order.
func (s *Sink) Receipts(ctx context.Context) ([]domain.Receipt, error) {
	entries, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts from redis: %w", err)
	}

	receipts := make([]domain.Receipt, 0, len(entries))
	for _, entry := range entries {
		var r domain.Receipt
		if err := json.Unmarshal([]byte(entry), &r); err != nil {
			return nil, fmt.Errorf("failed to unmarshal receipt: %w", err)
		}
		receipts = append(receipts, r)
	}
	return receipts, nil
}

// Close closes the underlying redis client.
func (s *Sink) Close() error {
	return s.client.Close()
}
