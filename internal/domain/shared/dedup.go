package shared

import (
	"context"
	"time"
)

// DedupStore stores operation keys to prevent duplicate side effects,
// such as sending the same deployment notice twice
type DedupStore interface {
	// MarkProcessed marks a key as processed with a TTL
	// Returns true if the key was newly marked, false if it was already processed
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// IsProcessed checks if a key has already been processed
	IsProcessed(ctx context.Context, key string) (bool, error)

	// Close closes the store and releases resources
	Close() error
}

// DedupConfig holds configuration for duplicate suppression
type DedupConfig struct {
	// TTL is the time-to-live for processed keys
	// After this duration, the same key can be processed again
	TTL time.Duration

	// Enabled determines whether duplicate suppression is enabled
	Enabled bool
}

// DefaultDedupConfig returns the default dedup configuration
func DefaultDedupConfig() DedupConfig {
	return DedupConfig{
		TTL:     24 * time.Hour,
		Enabled: true,
	}
}
