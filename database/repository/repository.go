// Package repository holds helpers shared by the MongoDB-backed stores.
package repository

import (
	"context"
	"time"
)

// Default operation timeouts for store calls.
const (
	ReadTimeout  = 5 * time.Second
	WriteTimeout = 5 * time.Second
	IndexTimeout = 10 * time.Second
)

// WithTimeout derives a bounded context for a single store call.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}
