package logger

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const batchIDKey contextKey = "batch_id"

// NewBatchID generates a new batch run identifier.
func NewBatchID() string {
	return uuid.NewString()
}

// WithBatchID returns a child context carrying the given batch id.
func WithBatchID(ctx context.Context, batchID string) context.Context {
	return context.WithValue(ctx, batchIDKey, batchID)
}

// GetBatchID returns the batch id stored in ctx, or an empty string
// when the context carries none.
func GetBatchID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(batchIDKey).(string); ok {
		return id
	}
	return ""
}
